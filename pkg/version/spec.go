// Package version implements the version resolution engine of bumpact.
// It parses pinned version strings such as "v3", "v3.4", and "v3.4.1",
// tracks how precisely the author pinned them, and selects upgrade targets
// that preserve that precision.
// The package is pure: no I/O, no shared mutable state.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision is the number of numeric components a pinned version specifies.
type Precision int

const (
	// PrecisionMajor is a bare major pin such as "v3".
	PrecisionMajor Precision = iota + 1
	// PrecisionMinor is a major.minor pin such as "v3.4".
	PrecisionMinor
	// PrecisionFull is a full pin such as "v3.4.1".
	PrecisionFull
)

func (p Precision) String() string {
	switch p {
	case PrecisionMajor:
		return "major"
	case PrecisionMinor:
		return "minor"
	case PrecisionFull:
		return "full"
	}
	return "unknown"
}

// Spec is an immutable parsed version.
// Raw is the normalized input without the leading "v".
// Minor and Patch are nil when the component is absent; Patch is never set
// without Minor.
type Spec struct {
	Major int
	Minor *int
	Patch *int
	Raw   string
}

// MalformedVersionError is returned when a string doesn't match the accepted
// grammar v?<int>(.<int>(.<int>)?)?.
type MalformedVersionError struct {
	Input string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q", e.Input)
}

// Parse parses a raw version string.
// One leading "v" is stripped (case-sensitive).
// Exactly 1, 2, or 3 decimal non-negative integer components are accepted.
// Components are never zero-filled: "3" and "3.0.0" are distinct specs.
func Parse(raw string) (*Spec, error) {
	s := strings.TrimPrefix(raw, "v")
	if s == "" {
		return nil, &MalformedVersionError{Input: raw}
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return nil, &MalformedVersionError{Input: raw}
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return nil, &MalformedVersionError{Input: raw}
		}
		nums[i] = n
	}
	spec := &Spec{
		Major: nums[0],
		Raw:   s,
	}
	if len(nums) > 1 {
		spec.Minor = &nums[1]
	}
	if len(nums) > 2 {
		spec.Patch = &nums[2]
	}
	return spec, nil
}

// parseComponent accepts decimal digits only.
// strconv.Atoi would accept a leading sign, which the grammar forbids.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Precision reports how precisely the version is pinned.
func (s *Spec) Precision() Precision {
	if s.Patch != nil {
		return PrecisionFull
	}
	if s.Minor != nil {
		return PrecisionMinor
	}
	return PrecisionMajor
}

// Version renders the spec truncated to the given precision with a leading
// "v". Components the spec doesn't have are omitted, not zero-filled, so
// rendering a bare "v4" at minor precision yields "v4".
func (s *Spec) Version(p Precision) string {
	b := strings.Builder{}
	b.WriteString("v")
	b.WriteString(strconv.Itoa(s.Major))
	if p >= PrecisionMinor && s.Minor != nil {
		b.WriteString(".")
		b.WriteString(strconv.Itoa(*s.Minor))
	}
	if p >= PrecisionFull && s.Patch != nil {
		b.WriteString(".")
		b.WriteString(strconv.Itoa(*s.Patch))
	}
	return b.String()
}

// String renders the spec at its own precision, e.g. "v3.4".
func (s *Spec) String() string {
	return "v" + s.Raw
}
