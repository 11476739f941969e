package graph

// EdgeOption constrains an edge query by endpoint. Combine From and To
// to select the edges between a specific vertex pair.
type EdgeOption[V comparable] func(*EdgeQuery[V])

// From constrains the query to edges whose tail is the given vertex
// (either endpoint on an undirected graph).
func From[V comparable](tail V) EdgeOption[V] {
	return func(q *EdgeQuery[V]) { q.tail = &tail }
}

// To constrains the query to edges whose head is the given vertex
// (either endpoint on an undirected graph).
func To[V comparable](head V) EdgeOption[V] {
	return func(q *EdgeQuery[V]) { q.head = &head }
}

// EdgeQuery is a compiled set of edge constraints. It is shared by the
// crisp and fuzzy edge-set holders so both apply identical overlay
// matching.
type EdgeQuery[V comparable] struct {
	tail, head *V // nil means unconstrained
}

// NewEdgeQuery compiles the given options into a query.
func NewEdgeQuery[V comparable](opts ...EdgeOption[V]) EdgeQuery[V] {
	var q EdgeQuery[V]
	for _, opt := range opts {
		opt(&q)
	}

	return q
}

// Tail returns the tail constraint and whether one is set.
func (q EdgeQuery[V]) Tail() (V, bool) {
	if q.tail == nil {
		var zero V
		return zero, false
	}

	return *q.tail, true
}

// Head returns the head constraint and whether one is set.
func (q EdgeQuery[V]) Head() (V, bool) {
	if q.head == nil {
		var zero V
		return zero, false
	}

	return *q.head, true
}

// Match reports whether e satisfies the query. When directed is false
// the reversed orientation of e is matched as well (the undirected
// overlay).
func (q EdgeQuery[V]) Match(e Edge[V], directed bool) bool {
	if (q.tail == nil || e.tail == *q.tail) && (q.head == nil || e.head == *q.head) {
		return true
	}
	if directed {
		return false
	}

	return (q.tail == nil || e.head == *q.tail) && (q.head == nil || e.tail == *q.head)
}
