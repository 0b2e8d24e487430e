// Package simplex: simplex tree storage and insertion.
//
// The tree is a trie over sorted vertex labels. Each node is one
// simplex; its depth-1 is the simplex dimension. Sibling nodes live in a
// red-black tree keyed by label, so child iteration is always in
// ascending label order and every traversal in this package is
// deterministic.

package simplex

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Simplex is one node of the tree: a simplex identified by the sorted
// vertex labels on its root-to-node path. Handles are stable across
// unrelated insertions and become stale only when the simplex is
// removed.
type Simplex struct {
	label    int
	dim      int
	parent   *Simplex
	children *redblacktree.Tree // label → *Simplex, ascending

	// Tri-state filtration value: filt is meaningful only when known.
	filt  float64
	known bool
}

// Dimension returns the simplex dimension (number of vertices − 1).
func (s *Simplex) Dimension() int { return s.dim }

// Vertices returns the sorted vertex labels of s as a fresh slice.
// Complexity: O(d).
func (s *Simplex) Vertices() []int {
	out := make([]int, s.dim+1)
	for node, i := s, s.dim; i >= 0; node, i = node.parent, i-1 {
		out[i] = node.label
	}

	return out
}

// Tree is the simplex container: the full downward-closed family of
// simplices of one complex. The zero value is not usable; construct with
// NewTree. A Tree is exclusively owned by the pipeline run that fills it
// and is not safe for concurrent mutation.
type Tree struct {
	root   *Simplex // sentinel; dim −1, never exposed
	counts []int    // counts[d] = number of simplices of dimension d
	total  int
}

// NewTree creates an empty simplex tree.
// Complexity: O(1).
func NewTree() *Tree {
	return &Tree{root: &Simplex{label: -1, dim: -1}}
}

// Insert adds the simplex with the given vertex labels, together with
// every missing subface (all created with unknown filtration), and
// returns the handle of the full simplex. Inserting an already present
// simplex is a no-op that returns its existing handle; filtration values
// are never modified here.
//
// Errors:
//   - ErrEmptySimplex    — no labels.
//   - ErrNegativeLabel   — a label < 0.
//   - ErrDuplicateLabel  — repeated labels.
//
// Complexity: O(2^d · d · log b) for a d-simplex with sibling branching b.
func (t *Tree) Insert(labels []int) (*Simplex, error) {
	sorted, err := canonical(labels)
	if err != nil {
		return nil, err
	}
	t.insertClosure(t.root, sorted)

	node, ok := t.find(sorted)
	if !ok {
		panic("simplex: closure insertion lost the inserted simplex")
	}

	return node, nil
}

// Find returns the handle of the simplex with the given labels, if
// present. Invalid label sets (empty, negative, duplicated) report
// absence rather than an error.
// Complexity: O(d · log b).
func (t *Tree) Find(labels []int) (*Simplex, bool) {
	sorted, err := canonical(labels)
	if err != nil {
		return nil, false
	}

	return t.find(sorted)
}

// Has reports whether the simplex with the given labels is present.
func (t *Tree) Has(labels []int) bool {
	_, ok := t.Find(labels)
	return ok
}

// canonical validates labels and returns a sorted copy.
func canonical(labels []int) ([]int, error) {
	if len(labels) == 0 {
		return nil, ErrEmptySimplex
	}
	sorted := make([]int, len(labels))
	copy(sorted, labels)
	sort.Ints(sorted)
	if sorted[0] < 0 {
		return nil, ErrNegativeLabel
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, ErrDuplicateLabel
		}
	}

	return sorted, nil
}

// insertClosure inserts every non-empty subset of labels below parent.
// Each subset corresponds to exactly one (parent, suffix) pair, so every
// subface is visited once.
func (t *Tree) insertClosure(parent *Simplex, labels []int) {
	for i, label := range labels {
		child := t.ensureChild(parent, label)
		t.insertClosure(child, labels[i+1:])
	}
}

// ensureChild returns parent's child for label, creating it (with
// unknown filtration) on first use.
func (t *Tree) ensureChild(parent *Simplex, label int) *Simplex {
	if parent.children == nil {
		parent.children = redblacktree.NewWithIntComparator()
	} else if existing, ok := parent.children.Get(label); ok {
		return existing.(*Simplex)
	}

	node := &Simplex{label: label, dim: parent.dim + 1, parent: parent}
	parent.children.Put(label, node)
	for len(t.counts) <= node.dim {
		t.counts = append(t.counts, 0)
	}
	t.counts[node.dim]++
	t.total++

	return node
}

// find walks the trie along sorted labels.
func (t *Tree) find(sorted []int) (*Simplex, bool) {
	node := t.root
	for _, label := range sorted {
		if node.children == nil {
			return nil, false
		}
		next, ok := node.children.Get(label)
		if !ok {
			return nil, false
		}
		node = next.(*Simplex)
	}

	return node, true
}

// mustHandle guards container accessors against nil or detached handles.
// Both are contract violations by the caller, not runtime conditions.
func mustHandle(s *Simplex) {
	if s == nil {
		panic("simplex: nil simplex handle")
	}
	if s.parent == nil {
		panic("simplex: stale handle of a removed simplex")
	}
}
