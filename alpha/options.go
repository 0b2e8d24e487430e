package alpha

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/simplicial/delaunay"
)

// Sentinel errors of the assembly pipeline. Oracle failures pass through
// unchanged, so delaunay sentinels remain matchable on Build results.
var (
	// ErrOptionViolation indicates an invalid option value, e.g. a NaN
	// threshold.
	ErrOptionViolation = errors.New("alpha: option violation")

	// ErrNilOracle indicates BuildFrom received a nil oracle.
	ErrNilOracle = errors.New("alpha: nil oracle")
)

// Options collects the build configuration. Construct with
// DefaultOptions and adjust via With* options.
type Options struct {
	// Weights carries one power weight per point; nil or empty selects
	// the unweighted kernels. Consumed by Build only.
	Weights []float64

	// MaxAlpha prunes every simplex whose filtration value exceeds it.
	// The default +Inf keeps everything.
	MaxAlpha float64

	// DefaultFiltration skips value propagation entirely and assigns
	// zero to every simplex, keeping only the combinatorial structure.
	DefaultFiltration bool

	// Precision is the arithmetic contract of the shipped engine.
	// Consumed by Build only.
	Precision delaunay.Precision

	// Fast selects the engine's faster evaluation strategy. Consumed by
	// Build only.
	Fast bool

	err error
}

// DefaultOptions returns the baseline configuration: unweighted, no
// threshold, safe precision, full value propagation.
func DefaultOptions() Options {
	return Options{MaxAlpha: math.Inf(1), Precision: delaunay.PrecisionSafe}
}

// Option adjusts Options in place.
type Option func(*Options)

// WithWeights supplies one power weight per point. Length validation
// happens at engine construction.
func WithWeights(weights []float64) Option {
	return func(o *Options) { o.Weights = weights }
}

// WithMaxAlpha sets the pruning threshold (inclusive: simplices at
// exactly the threshold survive). Negative thresholds are legal, since
// weighted filtration values can be negative. NaN is rejected.
func WithMaxAlpha(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) {
			o.err = errors.Wrap(ErrOptionViolation, "max alpha must not be NaN")
			return
		}
		o.MaxAlpha = threshold
	}
}

// WithDefaultFiltration assigns zero to every simplex instead of
// propagating geometric values.
func WithDefaultFiltration() Option {
	return func(o *Options) { o.DefaultFiltration = true }
}

// WithPrecision selects the shipped engine's arithmetic contract.
func WithPrecision(p delaunay.Precision) Option {
	return func(o *Options) { o.Precision = p }
}

// WithFast selects the shipped engine's faster evaluation strategy.
func WithFast() Option {
	return func(o *Options) { o.Fast = true }
}
