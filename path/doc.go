// Package path implements shortest-path algorithms over any
// graph.Weighted source, crisp or fuzzy.
//
// Dijkstra computes single-source shortest distances with a min-heap
// priority queue using the lazy-decrease-key strategy: improved
// distances push duplicate heap entries, and stale entries are skipped
// when popped. Edges with +Inf weight are impassable and never relaxed;
// a negative weight aborts with ErrNegativeWeight.
//
// ShortestPath reconstructs the start→end vertex sequence from the
// predecessor map. Unreachable targets are detected explicitly through
// an infinite-distance check and reported as ErrNoPath, never as a
// degenerate single-vertex path.
//
// FloydWarshall computes all-pairs shortest distances by the standard
// triple-nested relaxation over Weight, keyed by ordered vertex pairs.
// ShortestPathSubgraph keeps only the edges lying on some all-pairs
// shortest path.
//
// Complexity:
//
//   - Dijkstra:             O((V + E) log V) time, O(V + E) space
//   - FloydWarshall:        O(V³) time, O(V²) space
//   - ShortestPathSubgraph: O(V³) time (dominated by FloydWarshall)
//
// The algorithms assume a stable vertex and edge set for the duration
// of a call; they never mutate their input.
package path
