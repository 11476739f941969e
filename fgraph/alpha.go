package fgraph

import "github.com/LucaDeng/fuzzpy/graph"

// Alpha projects the fuzzy graph onto the crisp graph of vertices and
// edges whose membership degrees meet or exceed alpha. Edges whose
// endpoint was cut are dropped as well, so the result never dangles.
// The projection preserves the graph's orientation.
func (fg *FuzzyGraph[V]) Alpha(alpha float64) *graph.Graph[V] {
	return fg.cut(fg.verts.Alpha(alpha), fg.edges.Alpha(alpha))
}

// SAlpha is the strong alpha-cut: membership degrees must strictly
// exceed alpha to survive.
func (fg *FuzzyGraph[V]) SAlpha(alpha float64) *graph.Graph[V] {
	return fg.cut(fg.verts.SAlpha(alpha), fg.edges.SAlpha(alpha))
}

// cut assembles the crisp projection from pre-cut vertex and edge sets.
func (fg *FuzzyGraph[V]) cut(vertices []V, edges []graph.Edge[V]) *graph.Graph[V] {
	out := graph.New(graph.WithDirected[V](fg.directed))
	for _, v := range vertices {
		out.AddVertex(v)
	}
	for _, e := range edges {
		if out.HasVertex(e.Tail()) && out.HasVertex(e.Head()) {
			// Endpoints survived the cut; the edge itself did too.
			_ = out.AddEdge(e)
		}
	}

	return out
}
