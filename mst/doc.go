// Package mst implements Kruskal's minimum spanning tree algorithm
// over any undirected graph.Weighted source, crisp or fuzzy.
//
// Candidate edges are processed in ascending weight order (stable sort,
// so equal-weight edges keep their encounter order) and an edge joins
// the tree iff its endpoints lie in different components, tracked by a
// disjoint-set union with path compression and union by rank.
//
// The algorithm stops once the tree holds |V|-1 edges; if the input is
// disconnected the candidate list is simply exhausted and the result is
// the minimum spanning forest of the graph.
//
// Directed graphs are rejected with ErrDirectedGraph.
//
// Complexity: O(E log E) for the sort plus near-O(E) union-find work.
package mst
