package graph

import "fmt"

// Edge is an immutable ordered pair of distinct vertices, directed from
// tail to head. Edges are plain comparable values: two edges are equal
// iff both ordered endpoints match, so (a,b) != (b,a). An undirected
// graph matches both orientations at query time instead of relaxing
// edge equality.
type Edge[V comparable] struct {
	tail, head V
}

// NewEdge constructs the edge tail→head.
// Returns ErrSelfLoop if tail == head.
func NewEdge[V comparable](tail, head V) (Edge[V], error) {
	if tail == head {
		return Edge[V]{}, ErrSelfLoop
	}

	return Edge[V]{tail: tail, head: head}, nil
}

// Tail returns the source vertex of the edge.
func (e Edge[V]) Tail() V { return e.tail }

// Head returns the destination vertex of the edge.
func (e Edge[V]) Head() V { return e.head }

// Contains reports whether the edge connects to v (as tail or head).
func (e Edge[V]) Contains(v V) bool {
	return e.tail == v || e.head == v
}

// Reverse returns a new edge with tail and head swapped.
// The receiver is not modified.
func (e Edge[V]) Reverse() Edge[V] {
	return Edge[V]{tail: e.head, head: e.tail}
}

// String renders the edge as "(tail, head)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.tail, e.head)
}
