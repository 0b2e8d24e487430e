// Package simplicial turns point clouds into filtered simplicial
// complexes ready for topological analysis — from geometric kernels to
// the alpha-complex construction pipeline.
//
// 🚀 What is simplicial?
//
//	An in-memory library that brings together:
//		• geom/     — vector kernels and circumscribing / power-sphere solvers
//		• simplex/  — the simplex tree: a downward-closed simplex container
//		              with filtration values, repair and pruning passes
//		• delaunay/ — the triangulation collaborator: maximal cells,
//		              intrinsic squared-radius values, Gabriel predicate
//		• alpha/    — the filtration propagation engine and the
//		              Build(points, ...) construction surface
//		• landmark/ — deterministic landmark subsampling helpers
//
// ✨ Why choose simplicial?
//
//   - Valid filtrations by construction — after the pipeline completes,
//     every face's value is ≤ every coface's value
//   - Deterministic — fixed iteration orders, caller-seeded RNG, no
//     hidden global state
//   - Weighted (power-distance) and unweighted variants behind one
//     construction surface
//   - Explicit tri-state filtration values — "not yet known" is never a
//     numeric sentinel
//
// Quick start:
//
//	pts := [][]float64{{1, 1}, {7, 0}, {4, 6}, {9, 6}, {0, 14}, {2, 19}, {9, 17}}
//	tree, err := alpha.Build(pts)
//	if err != nil { ... }
//	fmt.Println(tree.Dimension(), tree.NumSimplices())
//
// Persistence-diagram computation, file formats and bindings are out of
// scope; the library produces the filtered complex only.
//
//	go get github.com/katalvlaran/simplicial
package simplicial
