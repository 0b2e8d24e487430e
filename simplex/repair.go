package simplex

// MakeNonDecreasing is the monotonicity repair pass: it guarantees that
// every face's filtration value is ≤ every coface's value, assuming the
// values were produced with bounded (non-exact) arithmetic error.
//
// Algorithm Outline:
//  1. Visit dimensions strictly descending, from Dimension() down to 1.
//  2. For every simplex σ of the current dimension with a known value,
//     and for every codimension-1 face τ of σ: if filtration(τ) >
//     filtration(σ), lower τ to σ's value.
//
// Lowering a face can only create a new violation in which that face is
// the coface; such pairs belong to a later (lower) dimension pass, so a
// single sweep suffices. Faces are only ever lowered — cofaces are never
// raised — so downward closure is preserved and the pass is idempotent.
//
// Simplices with unknown filtration are skipped; run this only after
// propagation has assigned every value.
//
// Returns true if any value changed.
// Complexity: O(n · d²·log b) time, O(width) space.
func (t *Tree) MakeNonDecreasing() bool {
	changed := false
	for d := t.Dimension(); d >= 1; d-- {
		for _, s := range t.ByDimension(d) {
			if !s.known {
				continue
			}
			for _, f := range t.FacesOf(s) {
				if f.known && f.filt > s.filt {
					f.filt = s.filt
					changed = true
				}
			}
		}
	}

	return changed
}
