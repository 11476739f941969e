package path_test

import (
	"testing"

	"github.com/LucaDeng/fuzzpy/graph"
	"github.com/LucaDeng/fuzzpy/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWeightedCycle constructs the undirected cycle 1—2—3—4—1 where
// the chain edges cost 1 and the closing edge 1—4 costs 5.
func buildWeightedCycle(t *testing.T) *graph.Graph[int] {
	t.Helper()
	costs := map[[2]int]float64{
		{1, 2}: 1, {2, 3}: 1, {3, 4}: 1, {1, 4}: 5,
	}
	g := graph.New(graph.WithWeightFunc[int](func(tail, head int) float64 {
		if w, ok := costs[[2]int{tail, head}]; ok {
			return w
		}
		return costs[[2]int{head, tail}]
	}))
	for v := 1; v <= 4; v++ {
		g.AddVertex(v)
	}
	require.NoError(t, g.Connect(1, 2))
	require.NoError(t, g.Connect(2, 3))
	require.NoError(t, g.Connect(3, 4))
	require.NoError(t, g.Connect(1, 4))

	return g
}

// TestShortestPathSubgraph_DropsWeakEdge verifies that the overpriced
// closing edge 1—4 (direct cost 5, shortest distance 3) is dropped
// while every chain edge survives.
func TestShortestPathSubgraph_DropsWeakEdge(t *testing.T) {
	g := buildWeightedCycle(t)

	sub, err := path.ShortestPathSubgraph[int](g)
	require.NoError(t, err)

	assert.Equal(t, 4, sub.VertexCount(), "all vertices are kept")
	assert.Equal(t, 3, sub.EdgeCount())
	assert.True(t, sub.Adjacent(1, 2))
	assert.True(t, sub.Adjacent(2, 3))
	assert.True(t, sub.Adjacent(3, 4))
	assert.False(t, sub.Adjacent(1, 4), "non-shortest edge must be dropped")

	assert.True(t, sub.IsSubgraph(g))
}

// TestShortestPathSubgraph_AllStrong verifies that a graph whose every
// edge already lies on a shortest path is returned unchanged.
func TestShortestPathSubgraph_AllStrong(t *testing.T) {
	g := graph.New[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	require.NoError(t, g.Connect("A", "B"))
	require.NoError(t, g.Connect("B", "C"))

	sub, err := path.ShortestPathSubgraph[string](g)
	require.NoError(t, err)
	assert.True(t, sub.Equal(g))
}

func TestShortestPathSubgraph_PreservesOrientation(t *testing.T) {
	g := graph.New(graph.WithDirected[string](true))
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.Connect("A", "B"))

	sub, err := path.ShortestPathSubgraph[string](g)
	require.NoError(t, err)
	assert.True(t, sub.Directed())
}
