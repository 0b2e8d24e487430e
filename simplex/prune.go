package simplex

// PruneAbove removes every simplex whose filtration value exceeds
// threshold. With a non-decreasing filtration (see MakeNonDecreasing)
// every coface of a removed simplex also exceeds the threshold, so the
// survivors remain downward-closed without ever touching a removed
// simplex's faces.
//
// Simplices with unknown filtration are kept: the pass is an output
// filter meant to run after propagation, not a cleanup for half-built
// trees. Handles of removed simplices become stale.
//
// Returns the number of simplices removed.
// Complexity: O(n).
func (t *Tree) PruneAbove(threshold float64) int {
	removed := 0

	var walk func(node *Simplex)
	walk = func(node *Simplex) {
		if node.children == nil {
			return
		}
		// Collect first: detaching while the sibling iterator is live
		// would mutate the red-black tree under it.
		var doomed []*Simplex
		it := node.children.Iterator()
		for it.Next() {
			child := it.Value().(*Simplex)
			if child.known && child.filt > threshold {
				doomed = append(doomed, child)
				continue // the subtree goes as a whole
			}
			walk(child)
		}
		for _, child := range doomed {
			removed += t.detach(child)
		}
	}
	walk(t.root)

	return removed
}
