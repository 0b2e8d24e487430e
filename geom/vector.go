package geom

// Vector helpers shared by the sphere solver and the triangulation
// engine. All helpers assume equal-length inputs; the exported entry
// points of this package and of package delaunay validate dimensions
// before reaching them.

// Dot returns the Euclidean inner product a·b.
// Contract: len(a) == len(b).
// Complexity: O(d).
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// SqDist returns the squared Euclidean distance |a-b|².
// Contract: len(a) == len(b).
// Complexity: O(d).
func SqDist(a, b []float64) float64 {
	var sum, diff float64
	for i := range a {
		diff = a[i] - b[i]
		sum += diff * diff
	}

	return sum
}

// PowerDist returns the power distance |p-q|² − w of point p with
// weight w from point q. With w == 0 it coincides with SqDist.
// Contract: len(p) == len(q).
// Complexity: O(d).
func PowerDist(p, q []float64, w float64) float64 {
	return SqDist(p, q) - w
}

// sub returns a−b as a fresh slice.
// Contract: len(a) == len(b).
func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}
