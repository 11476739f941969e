package graph

// Adjacent reports whether head is directly connected to tail by an
// edge (in either orientation on an undirected graph). A vertex is
// never adjacent to itself.
func (g *Graph[V]) Adjacent(tail, head V) bool {
	if tail == head {
		return false
	}
	matched, err := g.Edges(From(tail), To(head))

	return err == nil && len(matched) > 0
}

// Neighbors returns the vertices adjacent to v, in vertex insertion
// order. On a directed graph these are the out-neighbors of v.
// Complexity: O(V·E).
func (g *Graph[V]) Neighbors(v V) []V {
	out := make([]V, 0)
	for _, u := range g.vorder {
		if g.Adjacent(v, u) {
			out = append(out, u)
		}
	}

	return out
}

// Connected reports whether head is reachable from tail via a
// nontrivial path; a vertex is not considered connected to itself.
// Convenience wrapper for the package-level Connected.
func (g *Graph[V]) Connected(tail, head V) bool {
	return Connected[V](g, tail, head)
}

// Connected reports whether head is reachable from tail over g via a
// breadth-first search. It returns false when tail == head: "connected"
// means reachable via a nontrivial path. Works on any Weighted graph,
// crisp or fuzzy.
// Complexity: O(V·E) with the Neighbors-based frontier expansion.
func Connected[V comparable](g Weighted[V], tail, head V) bool {
	if tail == head {
		return false
	}

	done := make(map[V]struct{})
	frontier := g.Neighbors(tail)
	for len(frontier) > 0 {
		next := make([]V, 0)
		for _, v := range frontier {
			if v == head {
				return true
			}
			if _, seen := done[v]; seen {
				continue
			}
			done[v] = struct{}{}
			for _, u := range g.Neighbors(v) {
				if _, seen := done[u]; !seen {
					next = append(next, u)
				}
			}
		}
		frontier = next
	}

	return false
}
