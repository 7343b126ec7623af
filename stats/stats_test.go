package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hypernull/hypergraph"
)

func mustBuild(t *testing.T, edges [][]int64) *hypergraph.Hypergraph {
	t.Helper()
	h, err := hypergraph.Build(edges)
	require.NoError(t, err)
	return h
}

func TestSequences(t *testing.T) {
	h := mustBuild(t, [][]int64{{1, 2, 3}, {3, 4}})

	assert.Equal(t, []int{1, 1, 2, 1}, DegreeSequence(h))
	assert.Equal(t, []int{3, 2}, DimensionSequence(h))
}

func TestSummaries(t *testing.T) {
	h := mustBuild(t, [][]int64{{1, 2, 3}, {3, 4}})

	deg := DegreeSummary(h)
	assert.InDelta(t, 1.25, deg.Mean, 1e-12)
	assert.Equal(t, 1, deg.Min)
	assert.Equal(t, 2, deg.Max)

	dim := DimensionSummary(h)
	assert.InDelta(t, 2.5, dim.Mean, 1e-12)
	assert.InDelta(t, 0.5, dim.Variance, 1e-12)
}

func TestNodeDimensionMatrix(t *testing.T) {
	h := mustBuild(t, [][]int64{{1, 2, 3}, {3, 4}})

	m, nodes, dims := NodeDimensionMatrix(h)
	assert.Equal(t, []int64{1, 2, 3, 4}, nodes)
	assert.Equal(t, []int{2, 3}, dims)

	want := mat.NewDense(4, 2, []float64{
		0, 1, // node 1
		0, 1, // node 2
		1, 1, // node 3
		1, 0, // node 4
	})
	assert.True(t, mat.Equal(want, m), "got %v", mat.Formatted(m))
}

func TestNodeDimensionMatrixCountsRepeats(t *testing.T) {
	h := mustBuild(t, [][]int64{{5, 5}, {5, 6}})

	m, nodes, dims := NodeDimensionMatrix(h)
	assert.Equal(t, []int64{5, 6}, nodes)
	assert.Equal(t, []int{2}, dims)
	assert.Equal(t, 3.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(1, 0))
}

func TestProjectedGraph(t *testing.T) {
	h := mustBuild(t, [][]int64{{1, 2, 3}, {3, 4}})

	g := ProjectedGraph(h)
	assert.Equal(t, 4, g.Nodes().Len())
	assert.Equal(t, 4, g.Edges().Len())

	assert.True(t, g.HasEdgeBetween(1, 2))
	assert.True(t, g.HasEdgeBetween(1, 3))
	assert.True(t, g.HasEdgeBetween(2, 3))
	assert.True(t, g.HasEdgeBetween(3, 4))
	assert.False(t, g.HasEdgeBetween(1, 4))
}

func TestProjectedGraphIgnoresRepeatsAndMultiEdges(t *testing.T) {
	h := mustBuild(t, [][]int64{{5, 5}, {5, 6}, {5, 6}})

	g := ProjectedGraph(h)
	assert.Equal(t, 2, g.Nodes().Len())
	assert.Equal(t, 1, g.Edges().Len())
	assert.True(t, g.HasEdgeBetween(5, 6))
	assert.False(t, g.HasEdgeBetween(5, 5))
}

func TestTriangles(t *testing.T) {
	t.Run("SingleTriangleFromOneEdge", func(t *testing.T) {
		h := mustBuild(t, [][]int64{{1, 2, 3}, {3, 4}})
		assert.Equal(t, 1, Triangles(h))
		assert.Equal(t, 5, Wedges(h))
		assert.InDelta(t, 0.6, GlobalClustering(h), 1e-12)
	})

	t.Run("SquareHasNoTriangle", func(t *testing.T) {
		h := mustBuild(t, [][]int64{{1, 2}, {2, 3}, {3, 4}, {1, 4}})
		assert.Equal(t, 0, Triangles(h))
		assert.Equal(t, 4, Wedges(h))
		assert.Equal(t, 0.0, GlobalClustering(h))
	})

	t.Run("ClosedSquare", func(t *testing.T) {
		// Adding one diagonal closes two triangles.
		h := mustBuild(t, [][]int64{{1, 2}, {2, 3}, {3, 4}, {1, 4}, {1, 3}})
		assert.Equal(t, 2, Triangles(h))
	})

	t.Run("CompleteFour", func(t *testing.T) {
		// One 4-dimensional edge projects to K4: four triangles.
		h := mustBuild(t, [][]int64{{1, 2, 3, 4}, {1, 2}})
		assert.Equal(t, 4, Triangles(h))
		assert.InDelta(t, 1.0, GlobalClustering(h), 1e-12)
	})
}
