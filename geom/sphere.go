package geom

import "math"

// pivotEps scales the zero-pivot threshold of the Gram solver. A pivot
// below pivotEps·max(1, ‖G‖∞) is treated as a singular system.
const pivotEps = 1e-12

// Sphere is the circumscribing sphere of a simplex, in the power-distance
// generalization: every vertex p with weight w satisfies
// |p−Center|² − w == Alpha.
//
// Alpha is the squared radius in the unweighted case and may be negative
// in the weighted case (a vertex of weight w alone yields Alpha == −w).
type Sphere struct {
	// Center is the sphere center, constrained to the affine hull of the
	// defining points.
	Center []float64

	// Alpha is the common power of the defining points with respect to
	// the center (squared circumradius when all weights are zero).
	Alpha float64
}

// Circumsphere returns the sphere through the given affinely independent
// points with center in their affine hull. Shorthand for PowerSphere with
// all weights zero.
func Circumsphere(points [][]float64) (Sphere, error) {
	return PowerSphere(points, nil)
}

// PowerSphere solves for the sphere with equal power to every weighted
// vertex of a simplex.
//
// Algorithm Outline:
//  1. Shift the origin to p₀ and form dᵢ = pᵢ − p₀ for i = 1..k.
//  2. Equal power of pᵢ and p₀ gives the k×k Gram system
//     (dᵢ·dⱼ) λ = ( |dᵢ|² − wᵢ + w₀ ) / 2.
//  3. Solve by Gaussian elimination with partial pivoting (deterministic
//     pivot choice: largest magnitude, lowest row index on ties).
//  4. Center = p₀ + Σ λᵢ dᵢ; Alpha = |Σ λᵢ dᵢ|² − w₀.
//
// A nil weights slice means all weights are zero. A single point yields
// Sphere{Center: p, Alpha: −w}.
//
// Errors:
//   - ErrNoPoints          — empty input.
//   - ErrDimensionMismatch — differing or zero coordinate dimensions.
//   - ErrWeightCount       — non-nil weights of the wrong length.
//   - ErrDegenerate        — affinely dependent points (singular system).
//
// Complexity: O(k²·d + k³) time, O(k²) space.
func PowerSphere(points [][]float64, weights []float64) (Sphere, error) {
	n := len(points)
	if n == 0 {
		return Sphere{}, ErrNoPoints
	}
	dim := len(points[0])
	if dim == 0 {
		return Sphere{}, ErrDimensionMismatch
	}
	for _, p := range points[1:] {
		if len(p) != dim {
			return Sphere{}, ErrDimensionMismatch
		}
	}
	if weights != nil && len(weights) != n {
		return Sphere{}, ErrWeightCount
	}

	w := func(i int) float64 {
		if weights == nil {
			return 0
		}
		return weights[i]
	}

	p0, w0 := points[0], w(0)
	center := make([]float64, dim)
	copy(center, p0)

	// A single vertex: the sphere degenerates to the point itself.
	k := n - 1
	if k == 0 {
		return Sphere{Center: center, Alpha: -w0}, nil
	}

	// Edge differences and the Gram system.
	diffs := make([][]float64, k)
	for i := 0; i < k; i++ {
		diffs[i] = sub(points[i+1], p0)
	}
	gram := make([][]float64, k)
	rhs := make([]float64, k)
	var i, j int
	for i = 0; i < k; i++ {
		gram[i] = make([]float64, k)
		for j = 0; j < k; j++ {
			gram[i][j] = Dot(diffs[i], diffs[j])
		}
		rhs[i] = (Dot(diffs[i], diffs[i]) - w(i+1) + w0) / 2
	}

	lambda, err := solve(gram, rhs)
	if err != nil {
		return Sphere{}, err
	}

	// Center offset u = Σ λᵢ dᵢ inside the affine hull.
	u := make([]float64, dim)
	for i = 0; i < k; i++ {
		for j = 0; j < dim; j++ {
			u[j] += lambda[i] * diffs[i][j]
		}
	}
	for j = 0; j < dim; j++ {
		center[j] += u[j]
	}

	return Sphere{Center: center, Alpha: Dot(u, u) - w0}, nil
}

// solve performs in-place Gaussian elimination with partial pivoting on
// the k×k system a·x = b. Pivot selection is deterministic: the entry of
// largest magnitude in the column, breaking ties toward the lowest row
// index. A pivot below the scaled threshold reports ErrDegenerate.
//
// Complexity: O(k³) time, O(k) extra space.
func solve(a [][]float64, b []float64) ([]float64, error) {
	k := len(a)

	// Scale the zero-pivot threshold by the system magnitude.
	var norm float64 = 1
	var i, j, col, pivRow int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if v := math.Abs(a[i][j]); v > norm {
				norm = v
			}
		}
	}
	tol := pivotEps * norm

	var pivot, factor float64
	for col = 0; col < k; col++ {
		// Partial pivoting: pick the largest remaining entry in column col.
		pivRow = col
		pivot = math.Abs(a[col][col])
		for i = col + 1; i < k; i++ {
			if v := math.Abs(a[i][col]); v > pivot {
				pivot, pivRow = v, i
			}
		}
		if pivot <= tol {
			return nil, ErrDegenerate
		}
		if pivRow != col {
			a[col], a[pivRow] = a[pivRow], a[col]
			b[col], b[pivRow] = b[pivRow], b[col]
		}

		// Eliminate below the pivot.
		for i = col + 1; i < k; i++ {
			factor = a[i][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for j = col; j < k; j++ {
				a[i][j] -= factor * a[col][j]
			}
			b[i] -= factor * b[col]
		}
	}

	// Back substitution.
	x := make([]float64, k)
	var sum float64
	for i = k - 1; i >= 0; i-- {
		sum = 0
		for j = i + 1; j < k; j++ {
			sum += a[i][j] * x[j]
		}
		x[i] = (b[i] - sum) / a[i][i]
	}

	return x, nil
}
