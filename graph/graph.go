package graph

// Graph is the crisp in-memory graph: a vertex set and an edge set with
// an immutable directed flag. Vertex and edge enumeration follow
// insertion order, giving deterministic output for the algorithm
// packages and for tests. The zero value is not usable; construct with
// New or NewFrom.
type Graph[V comparable] struct {
	directed bool
	weightFn WeightFunc[V]

	vertices map[V]struct{}
	vorder   []V
	edges    map[Edge[V]]struct{}
	eorder   []Edge[V]
}

// New creates an empty graph. By default the graph is undirected and
// unweighted (Weight follows the 0/1/+Inf convention).
func New[V comparable](opts ...Option[V]) *Graph[V] {
	g := &Graph[V]{
		vertices: make(map[V]struct{}),
		edges:    make(map[Edge[V]]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewFrom creates a graph from vertex and edge iterables. Vertices are
// added first, then edges, so edges may reference any listed vertex.
// Complexity: O(V + E).
func NewFrom[V comparable](vertices []V, edges []Edge[V], opts ...Option[V]) (*Graph[V], error) {
	g := New(opts...)
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Directed reports whether the graph is directed. The flag is set at
// construction and never changes.
func (g *Graph[V]) Directed() bool { return g.directed }

// AddVertex inserts a vertex. Adding a present vertex is a no-op.
func (g *Graph[V]) AddVertex(v V) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.vorder = append(g.vorder, v)
}

// HasVertex reports whether v is in the vertex set.
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.vertices[v]

	return ok
}

// RemoveVertex deletes v and, first, every edge touching v, so no edge
// ever dangles. Returns ErrVertexNotFound if v is absent.
// Complexity: O(V + E).
func (g *Graph[V]) RemoveVertex(v V) error {
	if !g.HasVertex(v) {
		return ErrVertexNotFound
	}

	// Cascade: drop incident edges before the vertex itself.
	kept := g.eorder[:0]
	for _, e := range g.eorder {
		if e.Contains(v) {
			delete(g.edges, e)
			continue
		}
		kept = append(kept, e)
	}
	g.eorder = kept

	delete(g.vertices, v)
	for i, u := range g.vorder {
		if u == v {
			g.vorder = append(g.vorder[:i], g.vorder[i+1:]...)
			break
		}
	}

	return nil
}

// Vertices returns all vertices in insertion order.
// The returned slice is a copy and may be retained by the caller.
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.vorder))
	copy(out, g.vorder)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of stored edges.
func (g *Graph[V]) EdgeCount() int { return len(g.edges) }

// Clone returns an independent copy of the graph: same orientation,
// weight function, vertices and edges. Mutating the clone never affects
// the original.
func (g *Graph[V]) Clone() *Graph[V] {
	c := &Graph[V]{
		directed: g.directed,
		weightFn: g.weightFn,
		vertices: make(map[V]struct{}, len(g.vertices)),
		vorder:   make([]V, len(g.vorder)),
		edges:    make(map[Edge[V]]struct{}, len(g.edges)),
		eorder:   make([]Edge[V], len(g.eorder)),
	}
	for v := range g.vertices {
		c.vertices[v] = struct{}{}
	}
	copy(c.vorder, g.vorder)
	for e := range g.edges {
		c.edges[e] = struct{}{}
	}
	copy(c.eorder, g.eorder)

	return c
}
