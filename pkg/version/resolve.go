package version

import "sort"

// Result is the outcome of a resolution.
// A nil Target means no upgrade was found. Rendered carries the precision the
// target must be rendered with, which depends on the current pin's precision
// and which kind of candidate matched, not on the target's own shape.
type Result struct {
	Target   *Spec
	Rendered Precision
}

// IsUpdate reports whether the result proposes an upgrade.
func (r *Result) IsUpdate() bool {
	return r != nil && r.Target != nil
}

// Version renders the textual replacement version, e.g. "v4" or "v4.1".
// It must only be called when IsUpdate is true.
func (r *Result) Version() string {
	return r.Target.Version(r.Rendered)
}

// Resolve selects the best upgrade target for current from the catalog.
//
// Candidates are ranked descending, with missing components ranking lower
// than any present value. An upgrade requires the best candidate's major to
// strictly exceed the current major: same-major minor or patch bumps are
// never proposed, because the unit of staleness tracked here is the major
// line. When an upgrade exists, a target is chosen that preserves the
// current pin's precision where the catalog allows it.
func Resolve(current *Spec, catalog *Catalog) *Result {
	candidates := make([]*Spec, len(catalog.Specs()))
	copy(candidates, catalog.Specs())
	sort.SliceStable(candidates, func(i, j int) bool {
		return rankHigher(candidates[i], candidates[j])
	})
	if len(candidates) == 0 {
		return &Result{}
	}
	best := candidates[0]
	if best.Major <= current.Major {
		return &Result{}
	}
	switch current.Precision() {
	case PrecisionMajor:
		if t := find(candidates, func(s *Spec) bool {
			return s.Major == best.Major && s.Minor == nil
		}); t != nil {
			return &Result{Target: t, Rendered: PrecisionMajor}
		}
		if t := find(candidates, func(s *Spec) bool {
			return s.Major == best.Major && s.Minor != nil && s.Patch == nil
		}); t != nil {
			return &Result{Target: t, Rendered: PrecisionMinor}
		}
		return &Result{Target: best, Rendered: PrecisionFull}
	case PrecisionMinor:
		if t := find(candidates, func(s *Spec) bool {
			return s.Major == best.Major && s.Minor != nil && s.Patch == nil
		}); t != nil {
			return &Result{Target: t, Rendered: PrecisionMinor}
		}
		// The patch is dropped at rendering even if best has one.
		return &Result{Target: best, Rendered: PrecisionMinor}
	default:
		return &Result{Target: best, Rendered: PrecisionFull}
	}
}

// find returns the first candidate matching f in rank order.
// Candidates are sorted descending, so the first match is the highest.
func find(candidates []*Spec, f func(*Spec) bool) *Spec {
	for _, c := range candidates {
		if f(c) {
			return c
		}
	}
	return nil
}
