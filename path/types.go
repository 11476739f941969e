package path

import "errors"

// Sentinel errors for the shortest-path algorithms.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("path: graph is nil")

	// ErrSourceNotFound indicates the start vertex is absent.
	ErrSourceNotFound = errors.New("path: source vertex not found")

	// ErrTargetNotFound indicates the end vertex is absent.
	ErrTargetNotFound = errors.New("path: target vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was
	// encountered; Dijkstra requires non-negative costs.
	ErrNegativeWeight = errors.New("path: negative edge weight encountered")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("path: no path between vertices")
)

// Result holds single-source shortest-path data produced by Dijkstra.
type Result[V comparable] struct {
	// Dist maps each vertex to its minimum distance from the source
	// (+Inf for unreachable vertices).
	Dist map[V]float64

	// Prev maps each vertex to its predecessor on a shortest path from
	// the source. The source and unreachable vertices have no entry.
	// Ties in minimum-distance selection are broken arbitrarily, so
	// Prev may differ between equally short paths.
	Prev map[V]V
}

// item is a heap entry: a vertex and its candidate distance.
type item[V comparable] struct {
	v    V
	dist float64
}

// minHeap is a min-heap of *item ordered by dist ascending, used with
// the lazy-decrease-key strategy: stale duplicates stay in the heap and
// are ignored when popped.
type minHeap[V comparable] []*item[V]

func (h minHeap[V]) Len() int            { return len(h) }
func (h minHeap[V]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap[V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap[V]) Push(x interface{}) { *h = append(*h, x.(*item[V])) }

func (h *minHeap[V]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
