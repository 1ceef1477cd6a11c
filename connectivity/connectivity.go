package connectivity

import (
	"fmt"
	"sort"
)

// NewSpatial builds a Graph over nNodes nodes from an undirected edge
// list. Duplicate edges (in either orientation) are collapsed.
//
// Error Conditions:
//   - ErrInvalidGraph : nNodes < 1, an endpoint outside 0..nNodes-1,
//     or a self-loop.
//
// Time: O(E log E). Memory: O(N + E).
func NewSpatial(nNodes int, edges [][2]int) (*Graph, error) {
	if nNodes < 1 {
		return nil, fmt.Errorf("%w: node count %d must be ≥ 1", ErrInvalidGraph, nNodes)
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= nNodes || e[1] < 0 || e[1] >= nNodes {
			return nil, fmt.Errorf("%w: edge (%d,%d) references node outside 0..%d",
				ErrInvalidGraph, e[0], e[1], nNodes-1)
		}
		if e[0] == e[1] {
			return nil, fmt.Errorf("%w: self-loop on node %d", ErrInvalidGraph, e[0])
		}
	}

	return buildCSR(nNodes, edges), nil
}

// FromAdjacency builds a Graph from a dense boolean adjacency matrix.
//
// Error Conditions:
//   - ErrInvalidGraph : empty or non-square matrix, adj[i][i] == true,
//     or adj[i][j] != adj[j][i] (asymmetric).
//
// Time: O(N²). Memory: O(N + E).
func FromAdjacency(adj [][]bool) (*Graph, error) {
	n := len(adj)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty adjacency matrix", ErrInvalidGraph)
	}
	for i, row := range adj {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrInvalidGraph, i, len(row), n)
		}
	}

	var edges [][2]int
	for i := 0; i < n; i++ {
		if adj[i][i] {
			return nil, fmt.Errorf("%w: self-loop on node %d", ErrInvalidGraph, i)
		}
		for j := i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("%w: asymmetric adjacency at (%d,%d)",
					ErrInvalidGraph, i, j)
			}
			if adj[i][j] {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return buildCSR(n, edges), nil
}

// FromTriangles builds a Graph from a mesh triangulation: each triangle
// contributes its three sides as undirected edges. This is the usual
// input when the spatial nodes are vertices of a cortical or other
// surface mesh.
//
// Error Conditions:
//   - ErrInvalidGraph : nNodes < 1, a vertex outside 0..nNodes-1, or a
//     degenerate triangle (repeated vertex).
//
// Time: O(T log T). Memory: O(N + T).
func FromTriangles(nNodes int, tris [][3]int) (*Graph, error) {
	if nNodes < 1 {
		return nil, fmt.Errorf("%w: node count %d must be ≥ 1", ErrInvalidGraph, nNodes)
	}

	edges := make([][2]int, 0, 3*len(tris))
	for ti, tr := range tris {
		for k := 0; k < 3; k++ {
			if tr[k] < 0 || tr[k] >= nNodes {
				return nil, fmt.Errorf("%w: triangle %d references node %d outside 0..%d",
					ErrInvalidGraph, ti, tr[k], nNodes-1)
			}
		}
		if tr[0] == tr[1] || tr[1] == tr[2] || tr[0] == tr[2] {
			return nil, fmt.Errorf("%w: degenerate triangle %d (%d,%d,%d)",
				ErrInvalidGraph, ti, tr[0], tr[1], tr[2])
		}
		edges = append(edges,
			[2]int{tr[0], tr[1]},
			[2]int{tr[1], tr[2]},
			[2]int{tr[0], tr[2]},
		)
	}

	return buildCSR(nNodes, edges), nil
}

// Neighbors returns the sorted neighbor IDs of node v in O(degree).
// The slice aliases internal storage and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.colIdx[g.rowPtr[v]:g.rowPtr[v+1]]
}

// HasEdge reports whether u and v are adjacent, by binary search over
// u's sorted neighbor list. Time: O(log degree).
func (g *Graph) HasEdge(u, v int) bool {
	nbrs := g.Neighbors(u)
	i := sort.SearchInts(nbrs, v)

	return i < len(nbrs) && nbrs[i] == v
}

// buildCSR assembles the compressed sparse row arrays from a validated
// edge list, deduplicating and sorting neighbor lists.
func buildCSR(n int, edges [][2]int) *Graph {
	// 1. Canonicalize and deduplicate undirected pairs.
	keys := make([]int64, 0, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u > v {
			u, v = v, u
		}
		keys = append(keys, int64(u)*int64(n)+int64(v))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	uniq := keys[:0]
	for i, k := range keys {
		if i == 0 || k != keys[i-1] {
			uniq = append(uniq, k)
		}
	}

	// 2. Count degrees (each undirected edge appears in two rows).
	rowPtr := make([]int, n+1)
	for _, k := range uniq {
		u, v := int(k/int64(n)), int(k%int64(n))
		rowPtr[u+1]++
		rowPtr[v+1]++
	}
	for i := 0; i < n; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	// 3. Fill columns, then sort each row for deterministic iteration.
	colIdx := make([]int, rowPtr[n])
	next := make([]int, n)
	copy(next, rowPtr[:n])
	for _, k := range uniq {
		u, v := int(k/int64(n)), int(k%int64(n))
		colIdx[next[u]] = v
		next[u]++
		colIdx[next[v]] = u
		next[v]++
	}
	for i := 0; i < n; i++ {
		sort.Ints(colIdx[rowPtr[i]:rowPtr[i+1]])
	}

	return &Graph{n: n, rowPtr: rowPtr, colIdx: colIdx}
}
