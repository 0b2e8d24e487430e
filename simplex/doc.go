// Package simplex provides the simplex tree: a downward-closed container
// of simplices with per-simplex filtration values, plus the repair and
// pruning passes that keep a filtration valid.
//
// 🚀 What is a simplex tree?
//
//	A trie keyed by sorted vertex labels. Every root-to-node path spells
//	a simplex; siblings are kept in ascending label order, so every
//	enumeration in this package is deterministic. Faces and cofaces are
//	reached in time proportional to dimension × branching factor, never
//	by a full rescan.
//
// ✨ Key guarantees:
//
//   - Downward closure, always: Insert materializes every subface of the
//     inserted simplex, so a present simplex never has a missing face.
//   - Tri-state filtration: a value is either a real number or unknown;
//     unknown is an explicit state, never NaN or another numeric sentinel.
//   - Removal cascades to cofaces only, never to faces.
//   - MakeNonDecreasing lowers faces to their coface's value (top-down,
//     single pass, idempotent); PruneAbove cuts everything above a
//     threshold while preserving closure.
//
// ⚙️ Usage:
//
//	t := simplex.NewTree()
//	s, err := t.Insert([]int{0, 1, 2})   // also inserts [0] [1] [2] [0,1] [0,2] [1,2]
//	t.SetFiltration(s, 13.0)
//	for _, f := range t.FacesOf(s) { ... }
//
// Passing a nil or stale handle to any accessor is a programming error
// and panics; it is not a recoverable runtime condition.
//
// Complexity: Insert of a d-simplex costs O(2^d · d · log b) where b is
// the sibling branching factor; face enumeration O(d² · log b); iteration
// by dimension O(n).
package simplex
