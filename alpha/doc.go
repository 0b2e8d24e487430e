// Package alpha assembles filtered alpha complexes: it drives a
// triangulation oracle over a point set, materializes the resulting
// simplicial complex in a simplex.Tree, and assigns every simplex its
// filtration value.
//
// 🚀 The pipeline:
//
//  1. The oracle enumerates the maximal triangulation cells; inserting
//     them with their full subface closure yields the combinatorial
//     complex.
//  2. Values propagate from the top dimension downwards. A simplex
//     without a value receives its intrinsic squared circumradius
//     (power-sphere alpha when weighted). Each codimension-1 face is
//     then either min-updated against its coface, or, when still
//     unvalued and not Gabriel, inherits the coface's value outright.
//  3. Unless the oracle advertises exact arithmetic, a monotonicity
//     repair pass lowers any face left above one of its cofaces.
//  4. A finite WithMaxAlpha threshold prunes every simplex above it.
//
// ✨ Usage:
//
//	tree, err := alpha.Build(points,
//		alpha.WithWeights(weights),
//		alpha.WithMaxAlpha(40))
//
// Build wires the shipped delaunay.Engine; BuildFrom accepts any Oracle,
// so an exact or approximate external engine can drive the same
// pipeline.
//
// Zero points yield an empty tree and no error. Degenerate input
// surfaces the oracle's error unchanged (delaunay.ErrDegenerate from the
// shipped engine). With weighted points, negative filtration values are
// valid and expected.
package alpha
