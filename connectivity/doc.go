// Package connectivity builds the immutable adjacency structure that
// defines which spatio-temporal points count as neighbors for
// clustering.
//
// 🚀 What is a connectivity Graph?
//
//	An undirected, symmetric, self-loop-free adjacency over dense node
//	IDs 0..N-1, stored in compressed sparse row form. Built once from
//	an externally supplied spatial description — an edge list, a dense
//	adjacency matrix, or a mesh triangulation — and read-only
//	afterwards, so any number of permutation workers may share it.
//
// ✨ Key features:
//   - NewSpatial / FromAdjacency / FromTriangles constructors
//   - ExpandTime: replicate the spatial graph across time slices and
//     link temporally adjacent slices (the spatio-temporal extension)
//   - Neighbors(node) in O(degree), no allocation
//   - Components + VerifyDisjoint: cheap block-diagonal sanity check
//
// ⚙️ Usage:
//
//	sp, err := connectivity.FromTriangles(nVerts, tris)
//	if err != nil { ... }
//	g, err := sp.ExpandTime(nTimes)
//	for _, w := range g.Neighbors(v) { ... }
//
// Node indexing after ExpandTime: node = vertex*nTimes + time, matching
// the tensor package's flattening.
//
// Time:   construction O(E log E); Neighbors O(degree).
// Memory: O(N + E).
package connectivity
