package fgraph

import (
	"fmt"
	"math"

	"github.com/LucaDeng/fuzzpy/fset"
	"github.com/LucaDeng/fuzzpy/graph"
)

// Option configures a FuzzyGraph before first use.
type Option[V comparable] func(*FuzzyGraph[V])

// WithDirected sets the graph's orientation (true = directed edges,
// false = undirected overlay). The flag is immutable after New.
func WithDirected[V comparable](directed bool) Option[V] {
	return func(fg *FuzzyGraph[V]) { fg.directed = directed }
}

// FuzzyGraph is a graph over fuzzy vertex and edge sets. The zero value
// is not usable; construct with New or NewFrom.
type FuzzyGraph[V comparable] struct {
	directed bool
	verts    *fset.FuzzySet[V]
	edges    *fset.FuzzySet[graph.Edge[V]]
}

// New creates an empty fuzzy graph, undirected by default.
func New[V comparable](opts ...Option[V]) *FuzzyGraph[V] {
	fg := &FuzzyGraph[V]{
		verts: fset.New[V](),
		edges: fset.New[graph.Edge[V]](),
	}
	for _, opt := range opts {
		opt(fg)
	}

	return fg
}

// NewFrom creates a fuzzy graph from crisp vertex and edge iterables;
// every element receives membership degree 1.0. Vertices are added
// first, then edges.
func NewFrom[V comparable](vertices []V, edges []graph.Edge[V], opts ...Option[V]) (*FuzzyGraph[V], error) {
	fg := New(opts...)
	for _, v := range vertices {
		fg.AddVertex(v)
	}
	for _, e := range edges {
		if err := fg.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return fg, nil
}

// Directed reports whether the graph is directed. The flag is set at
// construction and never changes.
func (fg *FuzzyGraph[V]) Directed() bool { return fg.directed }

// AddVertex inserts v with membership degree 1.0.
// Adding a present vertex is a no-op; the stored degree is kept.
func (fg *FuzzyGraph[V]) AddVertex(v V) { fg.verts.AddObject(v, 1.0) }

// AddFuzzyVertex inserts v with membership degree mu.
// Adding a present vertex is a no-op; the stored degree is kept.
func (fg *FuzzyGraph[V]) AddFuzzyVertex(v V, mu float64) { fg.verts.AddObject(v, mu) }

// HasVertex reports whether v is stored in the vertex set, regardless
// of its membership degree.
func (fg *FuzzyGraph[V]) HasVertex(v V) bool { return fg.verts.Has(v) }

// VertexMu returns the membership degree of v, or 0 if v is absent.
func (fg *FuzzyGraph[V]) VertexMu(v V) float64 { return fg.verts.Mu(v) }

// Vertices returns all stored vertices (including zero-membership
// ones) in insertion order.
func (fg *FuzzyGraph[V]) Vertices() []V { return fg.verts.Objects() }

// VertexCount returns the number of stored vertices.
func (fg *FuzzyGraph[V]) VertexCount() int { return fg.verts.Len() }

// EdgeCount returns the number of stored edges.
func (fg *FuzzyGraph[V]) EdgeCount() int { return fg.edges.Len() }

// RemoveVertex deletes v and, first, every edge touching v.
// Returns graph.ErrVertexNotFound if v is absent.
func (fg *FuzzyGraph[V]) RemoveVertex(v V) error {
	if !fg.verts.Has(v) {
		return graph.ErrVertexNotFound
	}
	for _, e := range fg.edges.Objects() {
		if e.Contains(v) {
			_ = fg.edges.Remove(e)
		}
	}

	return fg.verts.Remove(v)
}

// AddEdge inserts e with membership degree 1.0.
// See AddFuzzyEdge for the validation rules.
func (fg *FuzzyGraph[V]) AddEdge(e graph.Edge[V]) error {
	return fg.AddFuzzyEdge(e, 1.0)
}

// AddFuzzyEdge inserts e with membership degree mu.
//
// Returns:
//   - graph.ErrSelfLoop if e was not built through graph.NewEdge;
//   - graph.ErrVertexNotFound if either endpoint is missing from the
//     vertex set;
//   - graph.ErrDuplicateEdge if an equal edge is already stored.
func (fg *FuzzyGraph[V]) AddFuzzyEdge(e graph.Edge[V], mu float64) error {
	if e.Tail() == e.Head() {
		return graph.ErrSelfLoop
	}
	if !fg.verts.Has(e.Tail()) || !fg.verts.Has(e.Head()) {
		return fmt.Errorf("fgraph: add edge %v: tail and head must be in vertex set: %w", e, graph.ErrVertexNotFound)
	}
	if fg.edges.Has(e) {
		return fmt.Errorf("fgraph: add edge %v: %w", e, graph.ErrDuplicateEdge)
	}
	fg.edges.AddObject(e, mu)

	return nil
}

// Connect adds the edge tail→head with membership degree mu.
// Convenience wrapper for AddFuzzyEdge.
func (fg *FuzzyGraph[V]) Connect(tail, head V, mu float64) error {
	e, err := graph.NewEdge(tail, head)
	if err != nil {
		return err
	}

	return fg.AddFuzzyEdge(e, mu)
}

// RemoveEdge deletes every edge matching (tail, head) under the
// graph's orientation. Removing a non-existent edge is a no-op.
// Returns graph.ErrVertexNotFound if either vertex is absent.
func (fg *FuzzyGraph[V]) RemoveEdge(tail, head V) error {
	matched, err := fg.Edges(graph.From(tail), graph.To(head))
	if err != nil {
		return err
	}
	for _, e := range matched {
		_ = fg.edges.Remove(e)
	}

	return nil
}

// Disconnect removes the edge(s) between tail and head. Convenience
// wrapper for RemoveEdge.
func (fg *FuzzyGraph[V]) Disconnect(tail, head V) error {
	return fg.RemoveEdge(tail, head)
}

// Edges returns the stored edges filtered by the given constraints, in
// insertion order, applying the undirected overlay when the graph is
// undirected. Returns graph.ErrVertexNotFound if a constrained endpoint
// is not in the vertex set.
func (fg *FuzzyGraph[V]) Edges(opts ...graph.EdgeOption[V]) ([]graph.Edge[V], error) {
	q := graph.NewEdgeQuery(opts...)
	if t, ok := q.Tail(); ok && !fg.verts.Has(t) {
		return nil, fmt.Errorf("fgraph: edges from %v: %w", t, graph.ErrVertexNotFound)
	}
	if h, ok := q.Head(); ok && !fg.verts.Has(h) {
		return nil, fmt.Errorf("fgraph: edges to %v: %w", h, graph.ErrVertexNotFound)
	}

	all := fg.edges.Objects()
	out := make([]graph.Edge[V], 0, len(all))
	for _, e := range all {
		if q.Match(e, fg.directed) {
			out = append(out, e)
		}
	}

	return out, nil
}

// Mu returns the membership degree of the edge between tail and head
// (under the overlay on undirected graphs), or 0 when no such edge
// exists or either vertex is unknown.
func (fg *FuzzyGraph[V]) Mu(tail, head V) float64 {
	matched, err := fg.Edges(graph.From(tail), graph.To(head))
	if err != nil || len(matched) == 0 {
		return 0
	}

	return fg.edges.Mu(matched[0])
}

// Weight returns the traversal cost from tail to head: 0 when
// tail == head, the reciprocal of the membership degree otherwise, and
// +Inf when the membership is 0. A stronger fuzzy connection therefore
// costs less to traverse.
func (fg *FuzzyGraph[V]) Weight(tail, head V) float64 {
	if tail == head {
		return 0
	}
	mu := fg.Mu(tail, head)
	if mu == 0 {
		return math.Inf(1)
	}

	return 1 / mu
}

// Adjacent reports whether head is directly connected to tail by an
// edge, regardless of membership degree. A vertex is never adjacent to
// itself.
func (fg *FuzzyGraph[V]) Adjacent(tail, head V) bool {
	if tail == head {
		return false
	}
	matched, err := fg.Edges(graph.From(tail), graph.To(head))

	return err == nil && len(matched) > 0
}

// Neighbors returns the vertices adjacent to v, in vertex insertion
// order. On a directed graph these are the out-neighbors of v.
func (fg *FuzzyGraph[V]) Neighbors(v V) []V {
	out := make([]V, 0)
	for _, u := range fg.Vertices() {
		if fg.Adjacent(v, u) {
			out = append(out, u)
		}
	}

	return out
}

// Connected reports whether head is reachable from tail via a
// nontrivial path.
func (fg *FuzzyGraph[V]) Connected(tail, head V) bool {
	return graph.Connected[V](fg, tail, head)
}

// Normalize rescales the vertex and edge membership degrees
// independently so the maximum degree in each set becomes 1.
// Normalize is idempotent.
func (fg *FuzzyGraph[V]) Normalize() {
	fg.verts.Normalize()
	fg.edges.Normalize()
}

// Equal reports whether fg and other hold the same vertices and edges
// with the same membership degrees. Orientation flags are not part of
// the comparison.
func (fg *FuzzyGraph[V]) Equal(other *FuzzyGraph[V]) bool {
	if other == nil {
		return false
	}

	return fg.verts.Equal(other.verts) && fg.edges.Equal(other.edges)
}

// IsSubgraph reports whether other contains fg: every vertex and edge
// of fg appears in other with at least the same membership degree.
func (fg *FuzzyGraph[V]) IsSubgraph(other *FuzzyGraph[V]) bool {
	if other == nil {
		return false
	}

	return fg.verts.IsSubset(other.verts) && fg.edges.IsSubset(other.edges)
}

// IsSupergraph reports whether fg contains other.
func (fg *FuzzyGraph[V]) IsSupergraph(other *FuzzyGraph[V]) bool {
	if other == nil {
		return false
	}

	return other.IsSubgraph(fg)
}
