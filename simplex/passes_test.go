package simplex_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setValue assigns one filtration value by label set, failing the test
// when the simplex is absent.
func setValue(t *testing.T, tree *simplex.Tree, labels []int, v float64) {
	t.Helper()
	s, ok := tree.Find(labels)
	require.True(t, ok, "simplex %v must exist", labels)
	tree.SetFiltration(s, v)
}

// value reads one filtration value by label set.
func value(t *testing.T, tree *simplex.Tree, labels []int) float64 {
	t.Helper()
	s, ok := tree.Find(labels)
	require.True(t, ok, "simplex %v must exist", labels)
	v, known := tree.Filtration(s)
	require.True(t, known, "simplex %v must carry a value", labels)

	return v
}

// triangleWithViolation builds a fully valued triangle whose edge [0,2]
// exceeds the triangle's value, a bounded-error style violation.
func triangleWithViolation(t *testing.T) *simplex.Tree {
	t.Helper()
	tree := simplex.NewTree()
	_, err := tree.Insert([]int{0, 1, 2})
	require.NoError(t, err)

	for _, v := range [][]int{{0}, {1}, {2}} {
		setValue(t, tree, v, 0)
	}
	setValue(t, tree, []int{0, 1}, 2)
	setValue(t, tree, []int{0, 2}, 7) // violates: face above its coface
	setValue(t, tree, []int{1, 2}, 3)
	setValue(t, tree, []int{0, 1, 2}, 5)

	return tree
}

// TestMakeNonDecreasing_LowersFaces verifies that repair lowers the
// offending face to its coface's value and touches nothing else.
func TestMakeNonDecreasing_LowersFaces(t *testing.T) {
	tree := triangleWithViolation(t)

	assert.True(t, tree.MakeNonDecreasing(), "a violation was present")

	assert.Equal(t, 5.0, value(t, tree, []int{0, 2}), "face lowered to coface value")
	assert.Equal(t, 2.0, value(t, tree, []int{0, 1}), "valid faces untouched")
	assert.Equal(t, 5.0, value(t, tree, []int{0, 1, 2}), "cofaces never raised")
}

// TestMakeNonDecreasing_Idempotent verifies that a second pass is a no-op.
func TestMakeNonDecreasing_Idempotent(t *testing.T) {
	tree := triangleWithViolation(t)
	require.True(t, tree.MakeNonDecreasing())

	assert.False(t, tree.MakeNonDecreasing(), "second pass must change nothing")
}

// TestMakeNonDecreasing_ChainsDownward verifies that a lowered face is
// itself re-checked against its own faces in the next dimension pass.
func TestMakeNonDecreasing_ChainsDownward(t *testing.T) {
	tree := simplex.NewTree()
	_, err := tree.Insert([]int{0, 1})
	require.NoError(t, err)
	setValue(t, tree, []int{0}, 4) // vertex above the edge
	setValue(t, tree, []int{1}, 0)
	setValue(t, tree, []int{0, 1}, 1)

	assert.True(t, tree.MakeNonDecreasing())
	assert.Equal(t, 1.0, value(t, tree, []int{0}), "vertex lowered to edge value")
}

// monotoneTriangle builds a valid filtration: vertices 0, edges 2,
// triangle 5.
func monotoneTriangle(t *testing.T) *simplex.Tree {
	t.Helper()
	tree := simplex.NewTree()
	_, err := tree.Insert([]int{0, 1, 2})
	require.NoError(t, err)
	for _, v := range [][]int{{0}, {1}, {2}} {
		setValue(t, tree, v, 0)
	}
	for _, e := range [][]int{{0, 1}, {0, 2}, {1, 2}} {
		setValue(t, tree, e, 2)
	}
	setValue(t, tree, []int{0, 1, 2}, 5)

	return tree
}

// TestPruneAbove_Threshold verifies removal above the threshold and
// preservation of downward closure below it.
func TestPruneAbove_Threshold(t *testing.T) {
	tree := monotoneTriangle(t)

	assert.Equal(t, 1, tree.PruneAbove(4), "only the triangle exceeds 4")
	assert.False(t, tree.Has([]int{0, 1, 2}))
	assert.Equal(t, 6, tree.NumSimplices())

	assert.Equal(t, 3, tree.PruneAbove(1), "all three edges exceed 1")
	assert.Equal(t, 3, tree.NumSimplices(), "vertices survive")
	assert.Equal(t, 0, tree.Dimension())
}

// TestPruneAbove_NoOp verifies that a permissive threshold removes
// nothing and that unknown values are always kept.
func TestPruneAbove_NoOp(t *testing.T) {
	tree := monotoneTriangle(t)
	assert.Equal(t, 0, tree.PruneAbove(5), "threshold is inclusive")
	assert.Equal(t, 7, tree.NumSimplices())

	fresh := simplex.NewTree()
	_, err := fresh.Insert([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.PruneAbove(0), "unknown filtration is never pruned")
}

// TestPruneAbove_CascadePreservesClosure prunes mid-filtration and then
// re-checks the closure invariant over every survivor.
func TestPruneAbove_CascadePreservesClosure(t *testing.T) {
	tree := simplex.NewTree()
	_, err := tree.Insert([]int{0, 1, 2, 3})
	require.NoError(t, err)

	// Valid filtration: value = dimension.
	for d := 0; d <= 3; d++ {
		for _, s := range tree.ByDimension(d) {
			tree.SetFiltration(s, float64(d))
		}
	}

	tree.PruneAbove(1.5) // keep vertices and edges only
	assert.Equal(t, 1, tree.Dimension())
	assert.Equal(t, 10, tree.NumSimplices(), "4 vertices + 6 edges")

	for d := 0; d <= tree.Dimension(); d++ {
		for _, s := range tree.ByDimension(d) {
			for _, f := range tree.FacesOf(s) {
				assert.NotNil(t, f, "closure must hold after pruning")
			}
		}
	}
}
