package version

// rankHigher reports whether a ranks above b when ordering candidates.
// Missing components rank lower than any present value, so a bare "v4"
// ranks below "v4.0" but above "v3.9". This ordering is only for picking
// the best candidate; IsNewer decides semantic newness.
func rankHigher(a, b *Spec) bool {
	if a.Major != b.Major {
		return a.Major > b.Major
	}
	am, bm := rankComponent(a.Minor), rankComponent(b.Minor)
	if am != bm {
		return am > bm
	}
	return rankComponent(a.Patch) > rankComponent(b.Patch)
}

func rankComponent(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}

// IsNewer reports whether candidate is strictly newer than current, compared
// at current's precision only: a bare "v3" pin compares majors and nothing
// else. Missing candidate components count as zero here, unlike the ranking
// order, which treats them as lower than any value.
func IsNewer(current, candidate *Spec) bool {
	if candidate.Major != current.Major {
		return candidate.Major > current.Major
	}
	if current.Minor == nil {
		return false
	}
	cm := zeroComponent(candidate.Minor)
	if cm != *current.Minor {
		return cm > *current.Minor
	}
	if current.Patch == nil {
		return false
	}
	return zeroComponent(candidate.Patch) > *current.Patch
}

func zeroComponent(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
