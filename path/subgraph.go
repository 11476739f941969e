package path

import (
	"fmt"

	"github.com/LucaDeng/fuzzpy/graph"
)

// ShortestPathSubgraph returns the crisp subgraph of g containing only
// its strong edges: edges whose direct weight equals the all-pairs
// shortest distance between their endpoints, i.e. edges lying on some
// shortest path. All vertices are kept; every other edge is dropped.
//
// The result preserves g's orientation. Fuzzy sources project to a
// crisp graph, mirroring the alpha-cut convention.
// Complexity: O(V³), dominated by FloydWarshall.
func ShortestPathSubgraph[V comparable](g graph.Weighted[V]) (*graph.Graph[V], error) {
	dist, err := FloydWarshall(g)
	if err != nil {
		return nil, err
	}

	out := graph.New(graph.WithDirected[V](g.Directed()))
	for _, v := range g.Vertices() {
		out.AddVertex(v)
	}

	edges, err := g.Edges()
	if err != nil {
		return nil, fmt.Errorf("path: shortest path subgraph: %w", err)
	}
	for _, e := range edges {
		if g.Weight(e.Tail(), e.Head()) <= dist[e.Tail()][e.Head()] {
			if err := out.AddEdge(e); err != nil {
				return nil, fmt.Errorf("path: shortest path subgraph: %w", err)
			}
		}
	}

	return out, nil
}
