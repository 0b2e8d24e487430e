// Package landmark selects representative subsets of a point set before
// complex construction: either uniformly at random or by farthest-first
// traversal, which spreads landmarks to cover the set.
//
// 🚀 Why subsample?
//
//	The triangulation cost grows steeply with the point count. Building
//	the complex over a few well-spread landmarks keeps the shape of the
//	data at a fraction of the cost.
//
// ⚙️ Usage:
//
//	idx, err := landmark.FarthestFirst(points, 50, nil)
//	sub := make([][]float64, len(idx))
//	for i, j := range idx {
//		sub[i] = points[j]
//	}
//	tree, err := alpha.Build(sub)
//
// Determinism: both selectors consume an optional *rand.Rand; a nil rng
// selects a fixed-seed default stream, so results are reproducible
// across runs and platforms. math/rand.Rand is not goroutine-safe; do
// not share one across goroutines.
package landmark
