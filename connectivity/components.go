package connectivity

import (
	"fmt"
)

// Components returns the connected components of the graph. Each
// component is a slice of node IDs in ascending order; components are
// ordered by their smallest member.
//
// Time:   O(N + E).
// Memory: O(N) for visited flags and output.
func (g *Graph) Components() [][]int {
	seen := make([]bool, g.n)
	var comps [][]int

	for start := 0; start < g.n; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	// BFS from the smallest unseen node emits members out of order;
	// sort each component for a stable contract.
	for _, comp := range comps {
		sortInts(comp)
	}

	return comps
}

// VerifyDisjoint checks that the supplied coarsening splits the graph
// into block-diagonal components: every block must be a union of whole
// connected components, blocks must not overlap, and together they must
// cover all nodes. This is a cheap upfront sanity/performance check for
// callers that intend to process blocks independently; it is not
// required for clustering correctness.
//
// Error Conditions:
//   - ErrNotDisjoint : a node missing from or repeated across blocks,
//     a block ID out of range, or an edge crossing two blocks.
//
// Time: O(N + E). Memory: O(N).
func (g *Graph) VerifyDisjoint(blocks [][]int) error {
	const unassigned = -1
	label := make([]int, g.n)
	for i := range label {
		label[i] = unassigned
	}

	// 1. Assign each node to its block, rejecting overlap and bad IDs.
	total := 0
	for bi, block := range blocks {
		for _, v := range block {
			if v < 0 || v >= g.n {
				return fmt.Errorf("%w: block %d references node %d outside 0..%d",
					ErrNotDisjoint, bi, v, g.n-1)
			}
			if label[v] != unassigned {
				return fmt.Errorf("%w: node %d appears in blocks %d and %d",
					ErrNotDisjoint, v, label[v], bi)
			}
			label[v] = bi
			total++
		}
	}
	if total != g.n {
		return fmt.Errorf("%w: blocks cover %d of %d nodes", ErrNotDisjoint, total, g.n)
	}

	// 2. No edge may cross a block boundary.
	for u := 0; u < g.n; u++ {
		for _, v := range g.Neighbors(u) {
			if label[u] != label[v] {
				return fmt.Errorf("%w: edge (%d,%d) crosses blocks %d and %d",
					ErrNotDisjoint, u, v, label[u], label[v])
			}
		}
	}

	return nil
}

// sortInts is a small insertion sort; component slices are emitted
// nearly sorted already, so this beats sort.Ints on typical inputs.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
