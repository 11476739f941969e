package graph

// Set-relational graph comparisons: vertex and edge sets are compared
// by literal containment. No isomorphism detection is performed —
// vertex identity must match exactly.

// Equal reports whether g and other hold exactly the same vertex and
// edge sets.
func (g *Graph[V]) Equal(other *Graph[V]) bool {
	if other == nil {
		return false
	}
	if len(g.vertices) != len(other.vertices) || len(g.edges) != len(other.edges) {
		return false
	}

	return g.IsSubgraph(other)
}

// IsSubgraph reports whether other contains g: every vertex and edge of
// g is present in other.
func (g *Graph[V]) IsSubgraph(other *Graph[V]) bool {
	if other == nil {
		return false
	}
	for v := range g.vertices {
		if !other.HasVertex(v) {
			return false
		}
	}
	for e := range g.edges {
		if !other.HasEdge(e) {
			return false
		}
	}

	return true
}

// IsSupergraph reports whether g contains other.
func (g *Graph[V]) IsSupergraph(other *Graph[V]) bool {
	if other == nil {
		return false
	}

	return other.IsSubgraph(g)
}

// IsStrictSubgraph reports whether other contains g and both differ.
func (g *Graph[V]) IsStrictSubgraph(other *Graph[V]) bool {
	return g.IsSubgraph(other) && !g.Equal(other)
}

// IsStrictSupergraph reports whether g contains other and both differ.
func (g *Graph[V]) IsStrictSupergraph(other *Graph[V]) bool {
	return g.IsSupergraph(other) && !g.Equal(other)
}
