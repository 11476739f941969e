package mst

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LucaDeng/fuzzpy/graph"
)

// Sentinel errors for spanning tree construction.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates Kruskal was invoked on a directed
	// graph; spanning trees are defined for undirected graphs only.
	ErrDirectedGraph = errors.New("mst: minimum spanning tree requires an undirected graph")
)

// Kruskal computes the minimum spanning tree of g as a new undirected
// crisp graph over the same vertex set.
//
// Steps:
//  1. Validate: g non-nil, g undirected (ErrDirectedGraph otherwise).
//  2. Sort all edges ascending by Weight (stable: equal weights keep
//     encounter order).
//  3. Union-find over the vertices; take each edge whose endpoints are
//     in different components.
//  4. Stop at |V|-1 tree edges, or when candidates are exhausted — a
//     disconnected input yields its minimum spanning forest.
//
// Complexity: O(E log E + α(V)·E).
func Kruskal[V comparable](g graph.Weighted[V]) (*graph.Graph[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	vertices := g.Vertices()
	candidates, err := g.Edges()
	if err != nil {
		return nil, fmt.Errorf("mst: kruskal: %w", err)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return g.Weight(candidates[i].Tail(), candidates[i].Head()) <
			g.Weight(candidates[j].Tail(), candidates[j].Head())
	})

	// Disjoint-set union with path compression and union by rank.
	parent := make(map[V]V, len(vertices))
	rank := make(map[V]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u V) V {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(u, v V) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	tree := graph.New(graph.WithDirected[V](false))
	for _, v := range vertices {
		tree.AddVertex(v)
	}

	want := len(vertices) - 1
	for _, e := range candidates {
		if tree.EdgeCount() >= want {
			break // tree complete
		}
		if find(e.Tail()) == find(e.Head()) {
			continue // would close a cycle
		}
		union(e.Tail(), e.Head())
		if err := tree.AddEdge(e); err != nil {
			return nil, fmt.Errorf("mst: kruskal: %w", err)
		}
	}

	return tree, nil
}
