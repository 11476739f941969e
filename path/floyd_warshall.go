package path

import (
	"math"

	"github.com/LucaDeng/fuzzpy/graph"
)

// FloydWarshall computes all-pairs shortest distances over g via the
// standard triple-nested relaxation, seeded from Weight. The result is
// keyed by ordered vertex pairs: dist[i][j] is the shortest distance
// from i to j, +Inf when j is unreachable from i, and always 0 on the
// diagonal.
//
// The loop order is fixed (k → i → j) over the deterministic vertex
// enumeration, so accumulation order is stable.
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall[V comparable](g graph.Weighted[V]) (map[V]map[V]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()

	// Seed with direct one-hop costs; Weight already yields 0 on the
	// diagonal and +Inf for absent edges.
	dist := make(map[V]map[V]float64, len(vertices))
	for _, i := range vertices {
		row := make(map[V]float64, len(vertices))
		for _, j := range vertices {
			row[j] = g.Weight(i, j)
		}
		dist[i] = row
	}

	for _, k := range vertices {
		for _, i := range vertices {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue // no path through k from i
			}
			for _, j := range vertices {
				kj := dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	return dist, nil
}
