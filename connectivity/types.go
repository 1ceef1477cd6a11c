// Package connectivity defines core types, options, and sentinel errors
// for the connectivity subpackage of github.com/katalvlaran/clusterperm.
package connectivity

import (
	"errors"
)

// Sentinel errors for connectivity construction and validation.
var (
	// ErrInvalidGraph indicates malformed input: out-of-range node IDs,
	// self-loops, an asymmetric adjacency matrix, or a non-positive
	// node or time count.
	ErrInvalidGraph = errors.New("connectivity: invalid graph")

	// ErrNotDisjoint indicates a coarsening that does not split the
	// graph into block-diagonal components (VerifyDisjoint).
	ErrNotDisjoint = errors.New("connectivity: blocks are not disjoint components")
)

// TimeOption configures the spatio-temporal expansion performed by
// Graph.ExpandTime.
type TimeOption func(*timeOptions)

// timeOptions holds the ExpandTime configuration.
type timeOptions struct {
	// diagonals links spatial neighbors across consecutive time
	// slices in addition to the (v,t)–(v,t±1) temporal edges.
	diagonals bool
}

// WithTemporalDiagonals additionally connects spatially adjacent
// vertices across consecutive time slices: (u,t)–(v,t+1) for every
// spatial edge u–v. Off by default; the default expansion links a
// vertex only to itself in neighboring slices.
func WithTemporalDiagonals() TimeOption {
	return func(o *timeOptions) { o.diagonals = true }
}

// Graph is an immutable undirected adjacency over nodes 0..n-1 in
// compressed sparse row form. Neighbor lists are sorted ascending.
// All methods are safe for concurrent use once construction returns.
type Graph struct {
	n      int
	rowPtr []int
	colIdx []int
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return len(g.colIdx) / 2 }

// Degree returns the number of neighbors of node v.
func (g *Graph) Degree(v int) int {
	return g.rowPtr[v+1] - g.rowPtr[v]
}
