package path

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/LucaDeng/fuzzpy/graph"
)

// Dijkstra computes shortest distances from source to every vertex of
// g, together with a predecessor map for path reconstruction.
//
// Preconditions (validated in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must exist in g (ErrSourceNotFound).
//  3. Every relaxed edge must have non-negative weight (ErrNegativeWeight).
//
// Edges with +Inf weight are treated as impassable and skipped.
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[V comparable](g graph.Weighted[V], source V) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return Result[V]{}, fmt.Errorf("path: dijkstra from %v: %w", source, ErrSourceNotFound)
	}

	vertices := g.Vertices()
	res := Result[V]{
		Dist: make(map[V]float64, len(vertices)),
		Prev: make(map[V]V, len(vertices)),
	}
	for _, v := range vertices {
		res.Dist[v] = math.Inf(1)
	}
	res.Dist[source] = 0

	visited := make(map[V]bool, len(vertices))
	pq := make(minHeap[V], 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &item[V]{v: source, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*item[V])
		u := it.v
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		for _, v := range g.Neighbors(u) {
			w := g.Weight(u, v)
			if math.IsInf(w, 1) {
				continue // impassable
			}
			if w < 0 {
				return Result[V]{}, fmt.Errorf("path: edge %v→%v weight=%v: %w", u, v, w, ErrNegativeWeight)
			}
			alt := res.Dist[u] + w
			if alt >= res.Dist[v] {
				continue
			}
			res.Dist[v] = alt
			res.Prev[v] = u
			heap.Push(&pq, &item[V]{v: v, dist: alt})
		}
	}

	return res, nil
}

// ShortestPath returns the shortest start→end vertex sequence and its
// total distance.
//
// Returns ErrTargetNotFound if end is absent from g, and ErrNoPath
// (with a +Inf distance) when end is unreachable from start: the
// infinite-distance check decides reachability, so a disconnected
// target is never reported as a single-vertex path. When start == end
// the path is [start] with distance 0.
func ShortestPath[V comparable](g graph.Weighted[V], start, end V) ([]V, float64, error) {
	res, err := Dijkstra(g, start)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(end) {
		return nil, 0, fmt.Errorf("path: shortest path to %v: %w", end, ErrTargetNotFound)
	}
	dist := res.Dist[end]
	if math.IsInf(dist, 1) {
		return nil, dist, fmt.Errorf("path: shortest path %v→%v: %w", start, end, ErrNoPath)
	}

	// Walk the predecessor chain back from end; the chain terminates at
	// start, which has no predecessor entry.
	rev := []V{end}
	for u := end; ; {
		p, ok := res.Prev[u]
		if !ok {
			break
		}
		rev = append(rev, p)
		u = p
	}
	out := make([]V, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out, dist, nil
}
