package delaunay

import "github.com/pkg/errors"

// Sentinel errors of the triangulation engine.
var (
	// ErrWeightCount indicates a non-empty weights sequence whose length
	// does not match the point count.
	ErrWeightCount = errors.New("delaunay: weights length must match point count")

	// ErrDimensionMismatch indicates points of differing (or zero)
	// coordinate dimension.
	ErrDimensionMismatch = errors.New("delaunay: points must share one nonzero dimension")

	// ErrDegenerate indicates the engine cannot produce a valid
	// combinatorial structure (collinear/coplanar collapse, duplicates).
	ErrDegenerate = errors.New("delaunay: degenerate point set")

	// ErrNumeric indicates an indeterminate geometric query, e.g. the
	// squared radius of a degenerate face.
	ErrNumeric = errors.New("delaunay: indeterminate geometric query")

	// ErrVertexRange indicates a vertex index outside the point set.
	ErrVertexRange = errors.New("delaunay: vertex index out of range")
)

// Precision selects the arithmetic contract the engine advertises to the
// filtration pipeline.
type Precision int

const (
	// PrecisionSafe declares intrinsic values with bounded relative
	// error; the pipeline must run monotonicity repair afterwards.
	PrecisionSafe Precision = iota

	// PrecisionExact declares exact intrinsic values; the pipeline may
	// skip monotonicity repair.
	PrecisionExact
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithPrecision selects the advertised arithmetic contract.
// Default: PrecisionSafe.
func WithPrecision(p Precision) Option {
	return func(e *Engine) { e.precision = p }
}

// WithFast selects the faster evaluation strategy, trading some
// intrinsic-value quality for speed.
func WithFast() Option {
	return func(e *Engine) { e.fast = true }
}
