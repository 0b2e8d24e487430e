package delaunay_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planarSeven is a 7-point generic planar set whose triangulation has
// exactly 6 triangles and 12 edges.
var planarSeven = [][]float64{
	{1, 1}, {7, 0}, {4, 6}, {9, 6}, {0, 14}, {2, 19}, {9, 17},
}

// TestNew_Validation exercises the constructor's input checks.
func TestNew_Validation(t *testing.T) {
	_, err := delaunay.New([][]float64{{0, 0}, {1, 1}}, []float64{1})
	assert.ErrorIs(t, err, delaunay.ErrWeightCount, "one weight for two points")

	_, err = delaunay.New([][]float64{{0, 0}, {1, 1, 1}}, nil)
	assert.ErrorIs(t, err, delaunay.ErrDimensionMismatch, "mixed dimensions")

	_, err = delaunay.New([][]float64{{}}, nil)
	assert.ErrorIs(t, err, delaunay.ErrDimensionMismatch, "zero-dimensional point")

	_, err = delaunay.New(nil, nil)
	assert.NoError(t, err, "empty input is a valid engine")
}

// TestEngine_Accessors covers PointCount, Point, and the precision flag.
func TestEngine_Accessors(t *testing.T) {
	eng, err := delaunay.New([][]float64{{1, 2}, {3, 4}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, eng.PointCount())
	assert.False(t, eng.Exact(), "safe precision by default")

	p, err := eng.Point(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, p)
	p[0] = 99
	q, err := eng.Point(1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, q[0], "Point returns a copy")

	_, err = eng.Point(2)
	assert.ErrorIs(t, err, delaunay.ErrVertexRange)
	_, err = eng.Point(-1)
	assert.ErrorIs(t, err, delaunay.ErrVertexRange)

	exact, err := delaunay.New([][]float64{{0, 0}}, nil, delaunay.WithPrecision(delaunay.PrecisionExact))
	require.NoError(t, err)
	assert.True(t, exact.Exact())
}

// TestMaximalCells_Small covers the single-cell path: fewer points than
// a full-dimensional simplex needs.
func TestMaximalCells_Small(t *testing.T) {
	eng, err := delaunay.New(nil, nil)
	require.NoError(t, err)
	cells, err := eng.MaximalCells()
	require.NoError(t, err)
	assert.Nil(t, cells, "no points, no cells")

	eng, err = delaunay.New([][]float64{{3, 7}}, nil)
	require.NoError(t, err)
	cells, err = eng.MaximalCells()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, cells, "a lone point is its own cell")

	eng, err = delaunay.New([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	require.NoError(t, err)
	cells, err = eng.MaximalCells()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, cells, "a triangle in 3-space spans one cell")
}

// TestMaximalCells_Degenerate verifies both degenerate paths: too few
// affinely independent points and a fully collapsed search.
func TestMaximalCells_Degenerate(t *testing.T) {
	eng, err := delaunay.New([][]float64{{0, 0}, {1, 1}, {2, 2}}, nil)
	require.NoError(t, err)
	_, err = eng.MaximalCells()
	assert.ErrorIs(t, err, delaunay.ErrDegenerate, "three collinear points")

	eng, err = delaunay.New([][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, nil)
	require.NoError(t, err)
	_, err = eng.MaximalCells()
	assert.ErrorIs(t, err, delaunay.ErrDegenerate, "four collinear points leave no cell")

	eng, err = delaunay.New([][]float64{{1, 2}, {1, 2}}, nil)
	require.NoError(t, err)
	_, err = eng.MaximalCells()
	assert.ErrorIs(t, err, delaunay.ErrDegenerate, "duplicate points")
}

// TestMaximalCells_Quad triangulates a generic planar quadrilateral and
// checks the empty-sphere property picks the correct diagonal.
func TestMaximalCells_Quad(t *testing.T) {
	eng, err := delaunay.New([][]float64{{0, 0}, {2, 0}, {0, 2}, {3, 3}}, nil)
	require.NoError(t, err)

	cells, err := eng.MaximalCells()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 3}}, cells, "split along the 1-2 diagonal")
}

// TestMaximalCells_PlanarSeven checks cell count and shape on the larger
// planar set.
func TestMaximalCells_PlanarSeven(t *testing.T) {
	eng, err := delaunay.New(planarSeven, nil)
	require.NoError(t, err)

	cells, err := eng.MaximalCells()
	require.NoError(t, err)
	assert.Len(t, cells, 6)
	for _, c := range cells {
		assert.Len(t, c, 3, "planar cells are triangles")
	}
}

// TestMaximalCells_Weighted triangulates the weighted 3D set: the heavy
// regular tetrahedron swallows the light fifth point on one side.
func TestMaximalCells_Weighted(t *testing.T) {
	points := [][]float64{{1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}, {1, 1, 1}, {2, 2, 2}}
	weights := []float64{4, 4, 4, 4, 1}

	eng, err := delaunay.New(points, weights)
	require.NoError(t, err)
	cells, err := eng.MaximalCells()
	require.NoError(t, err)

	want := [][]int{{0, 1, 2, 3}, {0, 1, 3, 4}, {0, 2, 3, 4}, {1, 2, 3, 4}}
	assert.Equal(t, want, cells, "cell 0-1-2-4 loses its empty sphere to the weights")
}
