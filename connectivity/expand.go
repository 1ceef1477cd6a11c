package connectivity

import (
	"fmt"
)

// ExpandTime replicates the spatial graph across nTimes time slices and
// links temporally adjacent slices, producing the spatio-temporal
// graph the clusterer runs on.
//
// Node indexing in the result: node = vertex*nTimes + t, so the time
// course of one spatial vertex occupies a contiguous ID range (the same
// flattening the tensor package uses).
//
// Edges in the result:
//  1. (u,t)–(v,t) for every spatial edge u–v, in every slice t.
//  2. (v,t)–(v,t+1) for every vertex v (same vertex, consecutive slices).
//  3. With WithTemporalDiagonals: (u,t)–(v,t+1) and (v,t)–(u,t+1) for
//     every spatial edge u–v.
//
// nTimes == 1 yields a copy of the spatial graph under the same ID
// scheme, the "optimized for spatio-temporal clustering" degenerate
// case the upstream workflow uses for purely spatial tests.
//
// Error Conditions:
//   - ErrInvalidGraph : nTimes < 1.
//
// Time: O(T·(N+E)). Memory: O(T·(N+E)).
func (g *Graph) ExpandTime(nTimes int, opts ...TimeOption) (*Graph, error) {
	if nTimes < 1 {
		return nil, fmt.Errorf("%w: time slice count %d must be ≥ 1", ErrInvalidGraph, nTimes)
	}
	var o timeOptions
	for _, opt := range opts {
		opt(&o)
	}

	id := func(v, t int) int { return v*nTimes + t }

	// Capacity: spatial edges per slice, temporal chains, optional diagonals.
	capEdges := g.NumEdges()*nTimes + g.n*(nTimes-1)
	if o.diagonals {
		capEdges += 2 * g.NumEdges() * (nTimes - 1)
	}
	edges := make([][2]int, 0, capEdges)

	for u := 0; u < g.n; u++ {
		// Temporal chain along vertex u.
		for t := 0; t+1 < nTimes; t++ {
			edges = append(edges, [2]int{id(u, t), id(u, t+1)})
		}
		for _, v := range g.Neighbors(u) {
			if v < u {
				continue // each undirected spatial edge once
			}
			for t := 0; t < nTimes; t++ {
				edges = append(edges, [2]int{id(u, t), id(v, t)})
				if o.diagonals && t+1 < nTimes {
					edges = append(edges, [2]int{id(u, t), id(v, t+1)})
					edges = append(edges, [2]int{id(v, t), id(u, t+1)})
				}
			}
		}
	}

	return buildCSR(g.n*nTimes, edges), nil
}
