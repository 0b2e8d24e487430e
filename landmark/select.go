package landmark

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/simplicial/geom"
)

// PickRandom returns count distinct indices drawn uniformly from
// 0..n-1, in selection order. A nil rng selects the deterministic
// default stream. ErrCountRange flags count < 0 or count > n.
//
// Complexity: O(n) time and space (partial Fisher-Yates).
func PickRandom(n, count int, rng *rand.Rand) ([]int, error) {
	if n < 0 || count < 0 || count > n {
		return nil, ErrCountRange
	}
	if count == 0 {
		return nil, nil
	}
	r := rngOrDefault(rng)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:count:count], nil
}

// FarthestFirst returns count point indices by farthest-first traversal:
// a random start, then repeatedly the point maximizing the squared
// distance to its nearest already-chosen landmark. Ties break towards
// the lowest index, so a given rng stream yields one fixed answer.
//
// ErrCountRange flags count < 0 or count > len(points);
// ErrDimensionMismatch flags points of differing dimension.
// Complexity: O(count · n · d) time, O(n) space.
func FarthestFirst(points [][]float64, count int, rng *rand.Rand) ([]int, error) {
	n := len(points)
	if count < 0 || count > n {
		return nil, ErrCountRange
	}
	if count == 0 {
		return nil, nil
	}
	for i := 1; i < n; i++ {
		if len(points[i]) != len(points[0]) {
			return nil, ErrDimensionMismatch
		}
	}
	r := rngOrDefault(rng)

	chosen := make([]int, 0, count)
	picked := make([]bool, n)
	minDist := make([]float64, n)
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}

	cur := r.Intn(n)
	for len(chosen) < count {
		chosen = append(chosen, cur)
		picked[cur] = true

		next, best := -1, math.Inf(-1)
		for i := range points {
			if d := geom.SqDist(points[i], points[cur]); d < minDist[i] {
				minDist[i] = d
			}
			if !picked[i] && minDist[i] > best {
				next, best = i, minDist[i]
			}
		}
		if next < 0 {
			break // every point picked
		}
		cur = next
	}

	return chosen, nil
}
