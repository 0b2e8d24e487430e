package delaunay

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplicial/geom"
)

// Engine computes the maximal cells of the Delaunay triangulation (or,
// with weights, the regular triangulation) of a fixed point set, and
// answers per-simplex geometric queries against that set.
//
// An Engine is immutable after New and safe for concurrent readers.
type Engine struct {
	dim       int
	points    [][]float64
	weights   []float64 // nil when unweighted
	precision Precision
	fast      bool
}

// New validates the point set and builds an Engine over it.
//
// All points must share one nonzero coordinate dimension
// (ErrDimensionMismatch). A non-empty weights slice must have exactly
// one weight per point (ErrWeightCount); nil or empty weights select the
// unweighted kernels. The input slices are not copied; callers must not
// mutate them while the Engine is in use.
func New(points [][]float64, weights []float64, opts ...Option) (*Engine, error) {
	e := &Engine{points: points, precision: PrecisionSafe}
	if len(weights) > 0 {
		if len(weights) != len(points) {
			return nil, errors.Wrapf(ErrWeightCount, "%d weights for %d points", len(weights), len(points))
		}
		e.weights = weights
	}
	if len(points) > 0 {
		e.dim = len(points[0])
		if e.dim == 0 {
			return nil, errors.Wrap(ErrDimensionMismatch, "zero-dimensional points")
		}
		for i, p := range points {
			if len(p) != e.dim {
				return nil, errors.Wrapf(ErrDimensionMismatch, "point %d has dimension %d, want %d", i, len(p), e.dim)
			}
		}
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// PointCount returns the number of points the Engine was built over.
func (e *Engine) PointCount() int { return len(e.points) }

// Point returns a copy of the coordinates of point i, or ErrVertexRange
// when i is outside the point set.
func (e *Engine) Point(i int) ([]float64, error) {
	if i < 0 || i >= len(e.points) {
		return nil, errors.Wrapf(ErrVertexRange, "point %d of %d", i, len(e.points))
	}
	p := make([]float64, e.dim)
	copy(p, e.points[i])

	return p, nil
}

// Exact reports whether the Engine advertises exact intrinsic values, in
// which case the filtration pipeline may skip monotonicity repair.
func (e *Engine) Exact() bool { return e.precision == PrecisionExact }

// weight returns the weight of point i, zero when unweighted.
func (e *Engine) weight(i int) float64 {
	if e.weights == nil {
		return 0
	}

	return e.weights[i]
}

// gather collects the coordinate rows and weights of the given vertices.
// Weights are nil in the unweighted case.
func (e *Engine) gather(vertices []int) ([][]float64, []float64) {
	pts := make([][]float64, len(vertices))
	for i, v := range vertices {
		pts[i] = e.points[v]
	}
	if e.weights == nil {
		return pts, nil
	}
	ws := make([]float64, len(vertices))
	for i, v := range vertices {
		ws[i] = e.weights[v]
	}

	return pts, ws
}

// checkVertices validates a vertex label slice against the point set.
func (e *Engine) checkVertices(vertices []int) error {
	for _, v := range vertices {
		if v < 0 || v >= len(e.points) {
			return errors.Wrapf(ErrVertexRange, "vertex %d of %d", v, len(e.points))
		}
	}

	return nil
}

// MaximalCells enumerates the maximal cells of the triangulation as
// sorted vertex-label slices, in lexicographic order.
//
// Fewer than d+2 points form a single cell spanning all of them,
// provided they are affinely independent. Otherwise every (d+1)-subset
// is tested: it is a cell exactly when its power sphere exists and no
// outside point lies strictly inside it (power distance below the
// sphere's alpha). ErrDegenerate is returned when no cell survives,
// which happens when the whole set collapses onto a hyperplane.
//
// Complexity: O(C(n, d+1) · n · d³) time, O(cells) space.
func (e *Engine) MaximalCells() ([][]int, error) {
	n := len(e.points)
	if n == 0 {
		return nil, nil
	}

	if n <= e.dim+1 {
		// Single-cell triangulation; the solver doubles as the affine
		// independence check.
		if _, err := geom.PowerSphere(e.points, e.weights); err != nil {
			return nil, errors.Wrapf(ErrDegenerate, "%d points in dimension %d: %v", n, e.dim, err)
		}
		cell := make([]int, n)
		for i := range cell {
			cell[i] = i
		}

		return [][]int{cell}, nil
	}

	k := e.dim + 1
	comb := make([]int, k)
	for i := range comb {
		comb[i] = i
	}

	var cells [][]int
	for {
		pts, ws := e.gather(comb)
		sphere, err := geom.PowerSphere(pts, ws)
		switch {
		case err == nil:
			if !e.conflicts(comb, sphere) {
				cell := make([]int, k)
				copy(cell, comb)
				cells = append(cells, cell)
			}
		case errors.Is(err, geom.ErrDegenerate):
			// Flat subset, never a cell.
		default:
			return nil, err
		}

		// Advance to the next k-combination of {0..n-1}.
		i := k - 1
		for i >= 0 && comb[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		comb[i]++
		for j := i + 1; j < k; j++ {
			comb[j] = comb[j-1] + 1
		}
	}

	if len(cells) == 0 {
		return nil, errors.Wrapf(ErrDegenerate, "no full-dimensional cell among %d points in dimension %d", n, e.dim)
	}

	return cells, nil
}

// conflicts reports whether any point outside the sorted vertex set lies
// strictly inside the power sphere.
func (e *Engine) conflicts(vertices []int, s geom.Sphere) bool {
	for j := range e.points {
		if contains(vertices, j) {
			continue
		}
		if geom.PowerDist(e.points[j], s.Center, e.weight(j)) < s.Alpha {
			return true
		}
	}

	return false
}

// contains reports membership of v in a sorted label slice.
func contains(sorted []int, v int) bool {
	for _, x := range sorted {
		if x == v {
			return true
		}
		if x > v {
			return false
		}
	}

	return false
}
