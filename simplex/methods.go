// Package simplex: queries, filtration access and removal.

package simplex

// Filtration returns the filtration value of s and whether it is known.
// An unknown value is a distinct state; it never participates in numeric
// comparisons.
// Complexity: O(1).
func (t *Tree) Filtration(s *Simplex) (float64, bool) {
	mustHandle(s)
	return s.filt, s.known
}

// SetFiltration assigns the filtration value of s. No recomputation or
// propagation is triggered.
// Complexity: O(1).
func (t *Tree) SetFiltration(s *Simplex, value float64) {
	mustHandle(s)
	s.filt = value
	s.known = true
}

// Dimension returns the maximal simplex dimension present, or −1 for an
// empty tree.
// Complexity: O(maxDim).
func (t *Tree) Dimension() int {
	for d := len(t.counts) - 1; d >= 0; d-- {
		if t.counts[d] > 0 {
			return d
		}
	}

	return -1
}

// NumSimplices returns the total number of simplices of all dimensions.
// Complexity: O(1).
func (t *Tree) NumSimplices() int { return t.total }

// NumVertices returns the number of dimension-0 simplices.
// Complexity: O(1).
func (t *Tree) NumVertices() int {
	if len(t.counts) == 0 {
		return 0
	}

	return t.counts[0]
}

// ByDimension returns every simplex of dimension d, in ascending
// lexicographic order of vertex labels. The slice is a snapshot: callers
// may mutate filtration values of lower-dimensional simplices while
// iterating it.
// Complexity: O(n) over the simplices of dimension ≤ d.
func (t *Tree) ByDimension(d int) []*Simplex {
	if d < 0 || d >= len(t.counts) || t.counts[d] == 0 {
		return nil
	}
	out := make([]*Simplex, 0, t.counts[d])

	var walk func(node *Simplex)
	walk = func(node *Simplex) {
		if node.dim == d {
			out = append(out, node)
			return // children are strictly deeper
		}
		if node.children == nil {
			return
		}
		it := node.children.Iterator()
		for it.Next() {
			walk(it.Value().(*Simplex))
		}
	}
	walk(t.root)

	return out
}

// FacesOf returns the codimension-1 faces of s: one face per removed
// vertex, ordered by the position of the removed vertex (ascending).
// The order is stable within one call. A 0-simplex has no faces.
//
// Every face is guaranteed present by the closure invariant; a missing
// face means the container was corrupted and panics.
// Complexity: O(d² · log b).
func (t *Tree) FacesOf(s *Simplex) []*Simplex {
	mustHandle(s)
	if s.dim == 0 {
		return nil
	}

	labels := s.Vertices()
	out := make([]*Simplex, 0, len(labels))
	face := make([]int, len(labels)-1)
	for skip := range labels {
		copy(face, labels[:skip])
		copy(face[skip:], labels[skip+1:])
		f, ok := t.find(face)
		if !ok {
			panic("simplex: downward closure violated (missing face)")
		}
		out = append(out, f)
	}

	return out
}

// CofacesOf returns every proper coface of s (each simplex whose vertex
// set strictly contains s's), in ascending lexicographic order.
//
// The traversal exploits that labels strictly increase along every
// root-to-node path: a subtree is pruned as soon as its root label
// exceeds the next still-unmatched label of s.
// Complexity: O(n) worst case, far less on typical complexes.
func (t *Tree) CofacesOf(s *Simplex) []*Simplex {
	mustHandle(s)
	labels := s.Vertices()
	var out []*Simplex

	var walk func(node *Simplex, matched int)
	walk = func(node *Simplex, matched int) {
		if matched < len(labels) {
			if node.label == labels[matched] {
				matched++
			} else if node.label > labels[matched] {
				return // labels[matched] can no longer appear deeper
			}
		}
		if matched == len(labels) && node != s {
			out = append(out, node)
		}
		if node.children == nil {
			return
		}
		it := node.children.Iterator()
		for it.Next() {
			walk(it.Value().(*Simplex), matched)
		}
	}
	if t.root.children != nil {
		it := t.root.children.Iterator()
		for it.Next() {
			walk(it.Value().(*Simplex), 0)
		}
	}

	return out
}

// Remove deletes s and, cascading, every coface of s, so downward
// closure holds afterwards. Faces of s are never touched. Handles of
// removed simplices become stale. Returns the number of simplices
// removed (at least 1).
// Complexity: O(n) worst case.
func (t *Tree) Remove(s *Simplex) int {
	mustHandle(s)
	labels := s.Vertices()

	// Collect the topmost subtree roots whose paths contain all of s's
	// labels; their subtrees jointly hold s and every coface exactly once.
	var doomed []*Simplex
	var walk func(node *Simplex, matched int)
	walk = func(node *Simplex, matched int) {
		if matched < len(labels) {
			if node.label == labels[matched] {
				matched++
			} else if node.label > labels[matched] {
				return
			}
		}
		if matched == len(labels) {
			doomed = append(doomed, node)
			return // the whole subtree goes; no need to descend
		}
		if node.children == nil {
			return
		}
		it := node.children.Iterator()
		for it.Next() {
			walk(it.Value().(*Simplex), matched)
		}
	}
	if t.root.children != nil {
		it := t.root.children.Iterator()
		for it.Next() {
			walk(it.Value().(*Simplex), 0)
		}
	}

	removed := 0
	for _, node := range doomed {
		removed += t.detach(node)
	}

	return removed
}

// detach unlinks node's entire subtree from the tree, updating counts.
// Returns the number of simplices removed.
func (t *Tree) detach(node *Simplex) int {
	removed := t.forget(node)
	node.parent.children.Remove(node.label)
	node.parent = nil

	return removed
}

// forget decrements counts for node and all of its descendants.
func (t *Tree) forget(node *Simplex) int {
	t.counts[node.dim]--
	t.total--
	removed := 1
	if node.children != nil {
		it := node.children.Iterator()
		for it.Next() {
			removed += t.forget(it.Value().(*Simplex))
		}
	}

	return removed
}
