package alpha

import (
	"math"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/simplicial/delaunay"
	"github.com/katalvlaran/simplicial/simplex"
)

// Oracle answers the triangulation queries the pipeline needs. The
// shipped delaunay.Engine satisfies it; any engine with the same
// contract can drive BuildFrom.
type Oracle interface {
	// PointCount returns the number of points triangulated.
	PointCount() int

	// MaximalCells enumerates the maximal cells as sorted vertex-label
	// slices.
	MaximalCells() ([][]int, error)

	// SquaredRadius returns the alpha of the smallest circumscribing
	// power sphere of the given simplex.
	SquaredRadius(vertices []int) (float64, error)

	// IsGabriel reports whether the face's sphere excludes every coface
	// vertex outside the face.
	IsGabriel(face, coface []int) (bool, error)

	// Exact reports whether values are exact, making monotonicity repair
	// unnecessary.
	Exact() bool
}

// compile-time conformance check
var _ Oracle = (*delaunay.Engine)(nil)

// Build triangulates the point set with the shipped engine and returns
// the fully valued alpha complex.
//
// Zero points yield an empty tree and a nil error. Invalid input
// surfaces the engine's sentinels (delaunay.ErrWeightCount,
// delaunay.ErrDimensionMismatch, delaunay.ErrDegenerate).
// Complexity: triangulation dominates; see delaunay.Engine.
func Build(points [][]float64, opts ...Option) (*simplex.Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(points) == 0 {
		return simplex.NewTree(), nil
	}

	engOpts := []delaunay.Option{delaunay.WithPrecision(o.Precision)}
	if o.Fast {
		engOpts = append(engOpts, delaunay.WithFast())
	}
	eng, err := delaunay.New(points, o.Weights, engOpts...)
	if err != nil {
		return nil, err
	}

	return assemble(eng, o)
}

// BuildFrom runs the pipeline against an external oracle. The Weights,
// Precision and Fast options configure the shipped engine only and are
// ignored here; the oracle already embodies them.
func BuildFrom(oracle Oracle, opts ...Option) (*simplex.Tree, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return assemble(oracle, o)
}

// assemble materializes the complex and assigns filtration values.
func assemble(oracle Oracle, o Options) (*simplex.Tree, error) {
	tree := simplex.NewTree()
	if oracle.PointCount() == 0 {
		return tree, nil
	}

	cells, err := oracle.MaximalCells()
	if err != nil {
		return nil, errors.Wrap(err, "alpha: enumerate cells")
	}
	for _, cell := range cells {
		if _, err := tree.Insert(cell); err != nil {
			return nil, errors.Wrapf(err, "alpha: insert cell %v", cell)
		}
	}
	klog.V(1).Infof("alpha: complex holds %d simplices over %d vertices, dimension %d",
		tree.NumSimplices(), tree.NumVertices(), tree.Dimension())

	if o.DefaultFiltration {
		for d := 0; d <= tree.Dimension(); d++ {
			for _, s := range tree.ByDimension(d) {
				tree.SetFiltration(s, 0)
			}
		}

		return tree, nil
	}

	if err := propagate(tree, oracle); err != nil {
		return nil, err
	}
	if !oracle.Exact() && tree.MakeNonDecreasing() {
		klog.V(2).Infof("alpha: monotonicity repair lowered at least one face")
	}
	if !math.IsInf(o.MaxAlpha, 1) {
		removed := tree.PruneAbove(o.MaxAlpha)
		klog.V(2).Infof("alpha: pruned %d simplices above %g", removed, o.MaxAlpha)
	}

	return tree, nil
}

// propagate assigns filtration values top-down. Each simplex without a
// value gets its intrinsic one; each codimension-1 face is min-updated
// when already valued, and otherwise inherits the coface's value unless
// the face is Gabriel (in which case its own, necessarily smaller,
// intrinsic value is assigned on a later pass).
func propagate(tree *simplex.Tree, oracle Oracle) error {
	for d := tree.Dimension(); d >= 1; d-- {
		for _, s := range tree.ByDimension(d) {
			if _, known := tree.Filtration(s); !known {
				v, err := oracle.SquaredRadius(s.Vertices())
				if err != nil {
					return errors.Wrapf(err, "alpha: value of %v", s.Vertices())
				}
				tree.SetFiltration(s, v)
			}
			sv, _ := tree.Filtration(s)

			for _, f := range tree.FacesOf(s) {
				if fv, known := tree.Filtration(f); known {
					if sv < fv {
						tree.SetFiltration(f, sv)
					}
					continue
				}
				gabriel, err := oracle.IsGabriel(f.Vertices(), s.Vertices())
				if err != nil {
					return errors.Wrapf(err, "alpha: gabriel test of %v in %v", f.Vertices(), s.Vertices())
				}
				if !gabriel {
					tree.SetFiltration(f, sv)
				}
			}
		}
		klog.V(2).Infof("alpha: dimension %d valued", d)
	}

	// Vertices untouched by inheritance take their intrinsic value: zero
	// unweighted, minus the weight otherwise.
	for _, v := range tree.ByDimension(0) {
		if _, known := tree.Filtration(v); !known {
			val, err := oracle.SquaredRadius(v.Vertices())
			if err != nil {
				return errors.Wrapf(err, "alpha: value of %v", v.Vertices())
			}
			tree.SetFiltration(v, val)
		}
	}

	return nil
}
