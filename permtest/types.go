// Package permtest defines core types, functional options, and sentinel
// errors for the permtest subpackage of github.com/katalvlaran/clusterperm.
package permtest

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/clusterperm/cluster"
	"github.com/katalvlaran/clusterperm/tensor"
)

// Sentinel errors for permutation runs.
var (
	// ErrNilInput is returned when the tensor, scorer or graph is nil.
	ErrNilInput = errors.New("permtest: nil tensor, scorer or graph")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// or the requested permutation count is < 1.
	ErrOptionViolation = errors.New("permtest: invalid option supplied")

	// ErrShapeMismatch is returned when the tensor's node count
	// (NSpace·NTime) differs from the graph's node count.
	ErrShapeMismatch = errors.New("permtest: tensor shape does not match graph")

	// ErrInsufficientPermutations is returned when the requested count
	// exceeds the number of distinct arrangements the design admits
	// (2^n for sign flips, C(n, n1) for relabelings). The run is not
	// silently capped; the caller must lower the request.
	ErrInsufficientPermutations = errors.New("permtest: requested permutations exceed distinct arrangements")

	// ErrScoring wraps a failure propagated from the pluggable scorer.
	// The whole run aborts; no partial null distribution is returned.
	ErrScoring = errors.New("permtest: scoring function failed")

	// ErrIncompleteRun is returned when p-value-dependent results are
	// requested from a cancelled (incomplete) run.
	ErrIncompleteRun = errors.New("permtest: run is incomplete")

	// ErrBadAlpha indicates a significance level outside (0,1).
	ErrBadAlpha = errors.New("permtest: alpha must be in (0,1)")
)

// Design selects how permutations resample the observations.
type Design int

const (
	// OneSample flips the sign of a random subset of samples per
	// permutation (paired / within-subject designs).
	OneSample Design = iota

	// TwoSample randomly repartitions the pooled samples into two
	// groups of the original sizes per permutation (independent
	// designs). Requires WithGroupSize.
	TwoSample
)

// Option configures a permutation run via functional arguments.
// An invalid value (e.g. negative jobs) is recorded internally and
// surfaced as ErrOptionViolation when Run starts.
type Option func(*Options)

// Options holds parameters controlling a permutation run.
type Options struct {
	// Ctx allows cooperative cancellation; workers check it between
	// permutations, never mid-permutation.
	Ctx context.Context

	// Design selects sign-flip (OneSample) or relabeling (TwoSample).
	Design Design

	// GroupSize is the size of the first group under TwoSample: the
	// first GroupSize samples of the tensor form group 0 in the
	// identity arrangement.
	GroupSize int

	// Seed initializes the run-owned random source. Identical seeds
	// reproduce identical permutation draws regardless of Jobs.
	Seed int64

	// Jobs is the worker pool size. Default: runtime.NumCPU().
	Jobs int

	// Cluster carries the clusterer's policy (summary, minimum size).
	Cluster cluster.Options

	// DisjointBlocks, when non-nil, triggers the upfront
	// connectivity.VerifyDisjoint sanity check against this coarsening.
	DisjointBlocks [][]int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - OneSample design, seed 1
//   - Jobs = runtime.NumCPU()
//   - cluster.DefaultOptions() (Mass summary, MinSize 1)
//   - no disjointness check.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Design:  OneSample,
		Seed:    1,
		Jobs:    runtime.NumCPU(),
		Cluster: cluster.DefaultOptions(),
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDesign selects the resampling design.
func WithDesign(d Design) Option {
	return func(o *Options) {
		if d != OneSample && d != TwoSample {
			o.err = fmt.Errorf("%w: unknown design %d", ErrOptionViolation, d)

			return
		}
		o.Design = d
	}
}

// WithGroupSize sets the first group's size for TwoSample designs.
// Must be between 1 and NSamples-1; the exact bound is checked at Run
// when the sample count is known.
func WithGroupSize(n1 int) Option {
	return func(o *Options) {
		if n1 < 1 {
			o.err = fmt.Errorf("%w: group size %d must be ≥ 1", ErrOptionViolation, n1)

			return
		}
		o.GroupSize = n1
	}
}

// WithSeed seeds the run-owned random source for reproducible draws.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithJobs sets the worker pool size.
//
//	n > 0: use n workers
//	n ≤ 0: invalid option → ErrOptionViolation
func WithJobs(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: jobs %d must be ≥ 1", ErrOptionViolation, n)

			return
		}
		o.Jobs = n
	}
}

// WithClusterOptions overrides the clusterer's policy.
func WithClusterOptions(co cluster.Options) Option {
	return func(o *Options) { o.Cluster = co }
}

// WithDisjointBlocks enables the block-diagonal sanity check: Run
// verifies the graph decomposes along the given coarsening before any
// permutation work starts.
func WithDisjointBlocks(blocks [][]int) Option {
	return func(o *Options) { o.DisjointBlocks = blocks }
}

// NullDistribution is the empirical distribution of the maximum cluster
// summary statistic, one value per permutation. Index 0 holds the
// identity arrangement, so the minimum attainable p-value is
// 1/n_permutations, never zero. Ordering beyond index 0 carries no
// meaning; only the multiset matters.
type NullDistribution []float64

// Critical returns the (1-alpha) quantile of the null distribution —
// the cluster-summary cutoff at family-wise level alpha.
//
// Error Conditions:
//   - ErrBadAlpha : alpha outside (0,1), or an empty distribution.
func (h NullDistribution) Critical(alpha float64) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}
	q, err := stats.Percentile(stats.Float64Data(h), 100*(1-alpha))
	if err != nil {
		return 0, fmt.Errorf("permtest: null quantile: %w", err)
	}

	return q, nil
}

// ClusterResult pairs one observed cluster with its family-wise-error
// corrected empirical p-value. It owns no references back into the
// observation tensor.
type ClusterResult struct {
	cluster.Cluster

	// PValue = (1 + #{h in H0 : h ≥ Summary}) / (1 + |H0|).
	PValue float64
}

// Result is the outcome of one permutation run.
type Result struct {
	// ObservedStat is the statistic map of the identity arrangement,
	// kept for downstream inspection and plotting.
	ObservedStat tensor.StatMap

	// Clusters are the observed clusters in the clusterer's
	// deterministic order.
	Clusters []cluster.Cluster

	// Results pairs each observed cluster with its p-value, preserving
	// order. Nil when Complete is false.
	Results []ClusterResult

	// H0 is the null distribution. For an incomplete run it holds only
	// the permutations that finished before cancellation and must not
	// be used for real p-value computation.
	H0 NullDistribution

	// Permutations counts the permutations actually performed,
	// identity included.
	Permutations int

	// Complete reports whether the run finished all requested
	// permutations. Always check it before using Results or H0.
	Complete bool
}

// SignificantClusters returns the observed clusters with
// PValue ≤ alpha, preserving order.
//
// Error Conditions:
//   - ErrIncompleteRun : the run was cancelled before completion.
//   - ErrBadAlpha      : alpha outside (0,1).
func (r *Result) SignificantClusters(alpha float64) ([]ClusterResult, error) {
	if !r.Complete {
		return nil, ErrIncompleteRun
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}

	var out []ClusterResult
	for _, cr := range r.Results {
		if cr.PValue <= alpha {
			out = append(out, cr)
		}
	}

	return out, nil
}
