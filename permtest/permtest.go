package permtest

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clusterperm/cluster"
	"github.com/katalvlaran/clusterperm/connectivity"
	"github.com/katalvlaran/clusterperm/score"
	"github.com/katalvlaran/clusterperm/tensor"
)

// Run executes a cluster-based permutation test.
//
// Steps:
//  1. Validate inputs: shapes, option values, permutation capacity
//     (2^n distinct sign patterns for OneSample, C(n, n1) relabelings
//     for TwoSample). Optionally verify the disjoint-blocks coarsening.
//  2. Score the identity arrangement, cluster the observed map, and
//     record its maximum summary as H0[0] — including the observed
//     arrangement guarantees p ≥ 1/nPerm.
//  3. Pre-draw the nPerm-1 remaining assignments serially from the
//     seeded source, so a given seed reproduces the same draws under
//     any worker count or schedule.
//  4. Fan the permutation indices out to a fixed pool of Jobs workers
//     (errgroup). Each worker re-scores, re-clusters, and writes the
//     max summary into its own H0 slot; the tensor and graph are only
//     read. Workers check for cancellation between permutations.
//  5. Gather: on completion, evaluate p-values against H0; on
//     cancellation, return the completed subset with Complete=false
//     and no p-values.
//
// Degenerate-but-valid inputs: a +Inf threshold yields no observed
// clusters and an all-zero H0 — not an error.
//
// Error Conditions:
//   - ErrNilInput, ErrOptionViolation, ErrShapeMismatch,
//     ErrInsufficientPermutations : input validation, before any work.
//   - ErrScoring : the scorer failed; the run aborts with no partial H0.
//   - cluster.ErrBadThreshold et al. propagate unchanged.
//
// Complexity: O(nPerm · cost(Score + FindClusters) / Jobs) wall-clock.
// Memory: O(nPerm·n) for pre-drawn assignments + O(nodes) per worker.
func Run(obs *tensor.Tensor, sc score.Scorer, g *connectivity.Graph,
	threshold float64, nPerm int, opts ...Option) (*Result, error) {
	// 1. Options and validation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if obs == nil || sc == nil || g == nil {
		return nil, ErrNilInput
	}
	if nPerm < 1 {
		return nil, fmt.Errorf("%w: permutation count %d must be ≥ 1", ErrOptionViolation, nPerm)
	}
	if obs.NumNodes() != g.NumNodes() {
		return nil, fmt.Errorf("%w: tensor has %d nodes (%d×%d), graph has %d",
			ErrShapeMismatch, obs.NumNodes(), obs.NSpace(), obs.NTime(), g.NumNodes())
	}

	n := obs.NSamples()
	if o.Design == TwoSample {
		if o.GroupSize < 1 || o.GroupSize >= n {
			return nil, fmt.Errorf("%w: group size %d must be in 1..%d (use WithGroupSize)",
				ErrOptionViolation, o.GroupSize, n-1)
		}
	}
	if total := distinctArrangements(o.Design, n, o.GroupSize); float64(nPerm) > total {
		return nil, fmt.Errorf("%w: requested %d, design admits %.0f",
			ErrInsufficientPermutations, nPerm, total)
	}
	if o.DisjointBlocks != nil {
		if err := g.VerifyDisjoint(o.DisjointBlocks); err != nil {
			return nil, err
		}
	}

	// 2. Observed pass (identity arrangement).
	identity := identityAssignment(o.Design, n, o.GroupSize)
	obsStat, err := sc.Score(obs, identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoring, err)
	}
	observed, err := cluster.FindClusters(obsStat, threshold, g, o.Cluster)
	if err != nil {
		return nil, err
	}

	h0 := make([]float64, nPerm)
	done := make([]bool, nPerm)
	h0[0] = cluster.MaxSummary(observed)
	done[0] = true

	// 3. Pre-draw assignments; index 0 stays the identity.
	rng := rand.New(rand.NewSource(o.Seed))
	assigns := make([][]int, nPerm)
	assigns[0] = identity
	for i := 1; i < nPerm; i++ {
		assigns[i] = drawAssignment(rng, o.Design, n, o.GroupSize)
	}

	// 4. Worker pool over permutation indices 1..nPerm-1.
	grp, gctx := errgroup.WithContext(o.Ctx)
	idxCh := make(chan int)
	grp.Go(func() error {
		defer close(idxCh)
		for i := 1; i < nPerm; i++ {
			select {
			case idxCh <- i:
			case <-gctx.Done():
				return nil
			}
		}

		return nil
	})
	for w := 0; w < o.Jobs; w++ {
		grp.Go(func() error {
			for i := range idxCh {
				statMap, serr := sc.Score(obs, assigns[i])
				if serr != nil {
					// Fatal: cancels gctx, draining the remaining work.
					return fmt.Errorf("%w: %w", ErrScoring, serr)
				}
				cls, cerr := cluster.FindClusters(statMap, threshold, g, o.Cluster)
				if cerr != nil {
					return cerr
				}
				h0[i] = cluster.MaxSummary(cls)
				done[i] = true
				// Cooperative cancellation, between permutations only.
				select {
				case <-gctx.Done():
					return nil
				default:
				}
			}

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	// 5. Gather.
	res := &Result{
		ObservedStat: obsStat,
		Clusters:     observed,
	}
	if o.Ctx.Err() != nil {
		// Cancelled: hand back the completed subset, unusable for real
		// p-values, and let the caller see that via Complete.
		for i, ok := range done {
			if ok {
				res.H0 = append(res.H0, h0[i])
			}
		}
		res.Permutations = len(res.H0)

		return res, nil
	}

	res.H0 = h0
	res.Permutations = nPerm
	res.Complete = true
	res.Results = Evaluate(observed, res.H0)

	return res, nil
}

// identityAssignment is permutation 0: no flips, original grouping.
func identityAssignment(d Design, n, n1 int) []int {
	a := make([]int, n)
	switch d {
	case OneSample:
		for i := range a {
			a[i] = 1
		}
	case TwoSample:
		for i := n1; i < n; i++ {
			a[i] = 1
		}
	}

	return a
}

// drawAssignment draws one resampled arrangement: a coin flip per
// sample (OneSample) or a random repartition into groups of the
// original sizes (TwoSample).
func drawAssignment(rng *rand.Rand, d Design, n, n1 int) []int {
	a := make([]int, n)
	switch d {
	case OneSample:
		for i := range a {
			a[i] = rng.Intn(2)*2 - 1
		}
	case TwoSample:
		perm := rng.Perm(n)
		for j := n1; j < n; j++ {
			a[perm[j]] = 1
		}
	}

	return a
}

// distinctArrangements counts the arrangements the design admits:
// 2^n sign patterns, or the binomial coefficient C(n, n1). Computed in
// float64 — overflow saturates to +Inf, which compares correctly
// against any requested count.
func distinctArrangements(d Design, n, n1 int) float64 {
	if d == OneSample {
		return math.Pow(2, float64(n))
	}
	c := 1.0
	k := n1
	if n-k < k {
		k = n - k
	}
	for i := 1; i <= k; i++ {
		c *= float64(n-k+i) / float64(i)
	}

	return c
}
