// Package delaunay is the triangulation collaborator of the alpha
// pipeline: it turns a (possibly weighted) point set into maximal
// Delaunay / regular-triangulation cells and answers the two geometric
// queries propagation needs: intrinsic squared-radius values and the
// Gabriel test.
//
// 🚀 What is the engine?
//
//	An exhaustive cell search: a (d+1)-subset of the points is a maximal
//	cell exactly when its power sphere conflicts with no other point
//	(power distance below the sphere's alpha). This is the defining
//	property of the regular triangulation, checked directly. With n
//	points in d dimensions the search costs O(C(n, d+1) · n · d³), meant
//	for moderate point counts rather than millions of points.
//
// ⚙️ Usage:
//
//	eng, err := delaunay.New(points, weights, delaunay.WithPrecision(delaunay.PrecisionExact))
//	cells, err := eng.MaximalCells()
//	alpha, err := eng.SquaredRadius([]int{0, 1, 2})
//	ok, err := eng.IsGabriel([]int{0, 1}, []int{0, 1, 2})
//
// Assumptions and failure modes:
//
//   - General position is assumed: exactly cospherical subsets may yield
//     overlapping cells, and fully degenerate input (all points on a
//     common hyperplane, duplicates) surfaces ErrDegenerate.
//   - Indeterminate per-simplex queries (degenerate faces) surface
//     ErrNumeric; they are never silently treated as zero.
//   - All kernels compute in float64. The Precision flag selects the
//     contract advertised to the pipeline: PrecisionSafe declares
//     bounded relative error (the pipeline runs monotonicity repair),
//     PrecisionExact declares exact values (repair is skipped). The fast
//     toggle mirrors the usual fast/safe kernel split; with the float64
//     kernels shipped here both strategies coincide.
package delaunay
