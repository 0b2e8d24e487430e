package alpha_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/katalvlaran/simplicial/alpha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleOracle is a hand-rolled oracle over one exact triangle:
// vertices enter at 0, edges at 1, the triangle at 2, all Gabriel.
type triangleOracle struct {
	radiusErr error
}

func (o *triangleOracle) PointCount() int                { return 3 }
func (o *triangleOracle) MaximalCells() ([][]int, error) { return [][]int{{0, 1, 2}}, nil }
func (o *triangleOracle) Exact() bool                    { return true }

func (o *triangleOracle) SquaredRadius(vertices []int) (float64, error) {
	if o.radiusErr != nil {
		return 0, o.radiusErr
	}

	return float64(len(vertices) - 1), nil
}

func (o *triangleOracle) IsGabriel(face, coface []int) (bool, error) { return true, nil }

// TestBuildFrom_ExternalOracle drives the pipeline with a custom oracle
// and checks the advertised values land unmodified.
func TestBuildFrom_ExternalOracle(t *testing.T) {
	tree, err := alpha.BuildFrom(&triangleOracle{})
	require.NoError(t, err)

	assert.Equal(t, 7, tree.NumSimplices())
	assert.Equal(t, 2.0, value(t, tree, []int{0, 1, 2}))
	for _, e := range tree.ByDimension(1) {
		v, known := tree.Filtration(e)
		require.True(t, known)
		assert.Equal(t, 1.0, v, "gabriel edges keep their intrinsic value")
	}
	for _, s := range tree.ByDimension(0) {
		v, known := tree.Filtration(s)
		require.True(t, known)
		assert.Zero(t, v)
	}
}

// TestBuildFrom_NilOracle verifies the sentinel.
func TestBuildFrom_NilOracle(t *testing.T) {
	_, err := alpha.BuildFrom(nil)
	assert.ErrorIs(t, err, alpha.ErrNilOracle)
}

// TestBuildFrom_OracleFailure verifies query errors surface with their
// cause intact.
func TestBuildFrom_OracleFailure(t *testing.T) {
	boom := errors.New("oracle: backend unavailable")
	_, err := alpha.BuildFrom(&triangleOracle{radiusErr: boom})
	assert.ErrorIs(t, err, boom)
}
