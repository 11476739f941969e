package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrSelfLoop indicates an edge construction with tail == head.
	ErrSelfLoop = errors.New("graph: edge tail and head must differ")

	// ErrVertexNotFound indicates an operation referenced a vertex that
	// is not in the graph's vertex set.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDuplicateEdge indicates an attempt to add an edge equal to one
	// already present.
	ErrDuplicateEdge = errors.New("graph: edge already exists")
)

// WeightFunc supplies the traversal cost of the edge from tail to head.
// It is only consulted for connected, distinct vertex pairs; the
// 0-on-self and +Inf-on-absent conventions are applied by Graph.Weight
// itself.
type WeightFunc[V comparable] func(tail, head V) float64

// Option configures a Graph before first use.
type Option[V comparable] func(*Graph[V])

// WithDirected sets the graph's orientation (true = directed edges,
// false = undirected overlay). The flag is immutable after New.
func WithDirected[V comparable](directed bool) Option[V] {
	return func(g *Graph[V]) { g.directed = directed }
}

// WithWeightFunc installs a custom edge cost function, turning the
// graph into a weighted one for the algorithm packages.
func WithWeightFunc[V comparable](fn WeightFunc[V]) Option[V] {
	return func(g *Graph[V]) { g.weightFn = fn }
}

// Weighted is the read surface the algorithm packages consume.
// Both *graph.Graph and *fgraph.FuzzyGraph satisfy it, so every crisp
// algorithm runs unchanged on fuzzy graphs (with reciprocal-membership
// edge costs).
type Weighted[V comparable] interface {
	// Directed reports the graph's orientation.
	Directed() bool

	// Vertices enumerates all vertices in deterministic (insertion) order.
	Vertices() []V

	// HasVertex reports vertex membership.
	HasVertex(v V) bool

	// Edges returns the edge set filtered by the given constraints,
	// applying the undirected overlay when the graph is undirected.
	Edges(opts ...EdgeOption[V]) ([]Edge[V], error)

	// Neighbors returns the vertices adjacent to v, in deterministic order.
	Neighbors(v V) []V

	// Weight returns the traversal cost from tail to head: 0 when
	// tail == head, +Inf when no edge connects them.
	Weight(tail, head V) float64
}
