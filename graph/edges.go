package graph

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts e into the edge set.
//
// Returns:
//   - ErrSelfLoop if e was not built through NewEdge (zero value);
//   - ErrVertexNotFound if either endpoint is missing from the vertex set;
//   - ErrDuplicateEdge if an equal edge is already present (equality is
//     the ordered pair, so an undirected graph may store one edge per
//     orientation; queries merge them through the overlay).
func (g *Graph[V]) AddEdge(e Edge[V]) error {
	if e.tail == e.head {
		return ErrSelfLoop
	}
	if !g.HasVertex(e.tail) || !g.HasVertex(e.head) {
		return fmt.Errorf("graph: add edge %v: tail and head must be in vertex set: %w", e, ErrVertexNotFound)
	}
	if _, ok := g.edges[e]; ok {
		return fmt.Errorf("graph: add edge %v: %w", e, ErrDuplicateEdge)
	}
	g.edges[e] = struct{}{}
	g.eorder = append(g.eorder, e)

	return nil
}

// RemoveEdge deletes every edge matching (tail, head) under the
// graph's orientation (both orientations on an undirected graph).
// Removing a non-existent edge is a documented no-op; callers needing
// existence must check first. Returns ErrVertexNotFound if either
// vertex is absent.
func (g *Graph[V]) RemoveEdge(tail, head V) error {
	matched, err := g.Edges(From(tail), To(head))
	if err != nil {
		return err
	}
	for _, e := range matched {
		delete(g.edges, e)
	}
	if len(matched) > 0 {
		kept := g.eorder[:0]
		for _, e := range g.eorder {
			if _, ok := g.edges[e]; ok {
				kept = append(kept, e)
			}
		}
		g.eorder = kept
	}

	return nil
}

// Connect adds the edge tail→head. Convenience wrapper for AddEdge.
func (g *Graph[V]) Connect(tail, head V) error {
	e, err := NewEdge(tail, head)
	if err != nil {
		return err
	}

	return g.AddEdge(e)
}

// Disconnect removes the edge(s) between tail and head. Convenience
// wrapper for RemoveEdge.
func (g *Graph[V]) Disconnect(tail, head V) error {
	return g.RemoveEdge(tail, head)
}

// HasEdge reports whether an edge equal to e (ordered endpoints) is
// stored. Use Adjacent for orientation-aware connection tests.
func (g *Graph[V]) HasEdge(e Edge[V]) bool {
	_, ok := g.edges[e]

	return ok
}

// Edges returns the edge set filtered by the given constraints, in
// insertion order. On an undirected graph both orientations of each
// stored edge are matched (the overlay). Returns ErrVertexNotFound if a
// constrained endpoint is not in the vertex set.
// Complexity: O(E).
func (g *Graph[V]) Edges(opts ...EdgeOption[V]) ([]Edge[V], error) {
	q := NewEdgeQuery(opts...)
	if t, ok := q.Tail(); ok && !g.HasVertex(t) {
		return nil, fmt.Errorf("graph: edges from %v: %w", t, ErrVertexNotFound)
	}
	if h, ok := q.Head(); ok && !g.HasVertex(h) {
		return nil, fmt.Errorf("graph: edges to %v: %w", h, ErrVertexNotFound)
	}

	out := make([]Edge[V], 0, len(g.eorder))
	for _, e := range g.eorder {
		if q.Match(e, g.directed) {
			out = append(out, e)
		}
	}

	return out, nil
}

// Weight returns the traversal cost from tail to head: 0 when
// tail == head, +Inf when no edge connects them (under the overlay for
// undirected graphs), otherwise 1 or the installed WeightFunc's value.
func (g *Graph[V]) Weight(tail, head V) float64 {
	if tail == head {
		return 0
	}
	matched, err := g.Edges(From(tail), To(head))
	if err != nil || len(matched) == 0 {
		return math.Inf(1)
	}
	if g.weightFn != nil {
		return g.weightFn(tail, head)
	}

	return 1
}

// EdgesByWeight returns all edges sorted ascending by Weight. The sort
// is stable, so equal-weight edges keep their insertion order.
// Complexity: O(E log E) comparisons, each an O(E) weight lookup.
func (g *Graph[V]) EdgesByWeight() []Edge[V] {
	out := make([]Edge[V], len(g.eorder))
	copy(out, g.eorder)
	sort.SliceStable(out, func(i, j int) bool {
		return g.Weight(out[i].tail, out[i].head) < g.Weight(out[j].tail, out[j].head)
	})

	return out
}
