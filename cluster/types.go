// Package cluster defines core types, options, and sentinel errors for
// the cluster subpackage of github.com/katalvlaran/clusterperm.
package cluster

import (
	"errors"
)

// Sentinel errors for clustering operations.
var (
	// ErrDimensionMismatch indicates the statistic map length differs
	// from the graph's node count.
	ErrDimensionMismatch = errors.New("cluster: statistic map length does not match graph node count")

	// ErrBadThreshold indicates a NaN or non-positive threshold.
	// +Inf is valid and yields an empty cluster list.
	ErrBadThreshold = errors.New("cluster: threshold must be positive (or +Inf)")

	// ErrBadOptions indicates an invalid Options value, e.g. a negative
	// MinSize or an unknown SummaryPolicy.
	ErrBadOptions = errors.New("cluster: invalid options")
)

// SummaryPolicy selects the cluster-level summary statistic.
type SummaryPolicy int

const (
	// Mass sums |statistic| over the cluster's members.
	Mass SummaryPolicy = iota
	// Size counts the cluster's members.
	Size
)

// Options contains tunable parameters for cluster extraction.
type Options struct {
	// Policy chooses the summary statistic: Mass or Size.
	Policy SummaryPolicy
	// MinSize drops connected components with fewer members.
	// 1 keeps isolated single-node excursions.
	MinSize int
}

// DefaultOptions returns Options with default settings:
// Policy=Mass, MinSize=1 (isolated nodes are kept).
func DefaultOptions() Options {
	return Options{
		Policy:  Mass,
		MinSize: 1,
	}
}

// Cluster is one connected, same-sign excursion of the statistic map.
type Cluster struct {
	// Members holds node IDs in ascending order. Every node belongs to
	// at most one cluster.
	Members []int
	// Summary is the cluster-level statistic under the chosen policy:
	// Σ|value| for Mass, len(Members) for Size.
	Summary float64
	// Sign is +1 for a positive excursion, -1 for a negative one.
	Sign int
}

// MinNode returns the smallest member node ID.
func (c *Cluster) MinNode() int { return c.Members[0] }
