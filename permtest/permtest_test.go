package permtest_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/clusterperm/cluster"
	"github.com/katalvlaran/clusterperm/connectivity"
	"github.com/katalvlaran/clusterperm/permtest"
	"github.com/katalvlaran/clusterperm/score"
	"github.com/katalvlaran/clusterperm/tensor"
)

// RunSuite exercises the permutation engine end to end on small,
// hand-checkable datasets.
type RunSuite struct {
	suite.Suite
}

// lineGraph returns the 5-node path 0–1–2–3–4.
func (s *RunSuite) lineGraph() *connectivity.Graph {
	g, err := connectivity.NewSpatial(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(s.T(), err)

	return g
}

// effectTensor builds nSamples observations over 5 spatial nodes and a
// single time step: a strong positive effect at nodes 0..2, near-zero
// noise at nodes 3..4. The jitter keeps every node's sample variance
// non-zero so the t statistic stays finite.
func (s *RunSuite) effectTensor(nSamples int) *tensor.Tensor {
	obs, err := tensor.New(nSamples, 5, 1)
	require.NoError(s.T(), err)
	for i := 0; i < nSamples; i++ {
		jit := 0.01 * float64(i%3-1) // -0.01, 0, +0.01 cycling
		for v := 0; v < 3; v++ {
			obs.Set(i, v, 0, 5+jit+0.001*float64(v))
		}
		for v := 3; v < 5; v++ {
			obs.Set(i, v, 0, jit+0.002*float64(i%2))
		}
	}

	return obs
}

// TestOneSample_Effect runs the sign-flip design against a strong
// effect and checks the cluster comes out significant.
func (s *RunSuite) TestOneSample_Effect() {
	obs := s.effectTensor(10)
	g := s.lineGraph()

	res, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 100,
		permtest.WithSeed(7), permtest.WithJobs(4))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Complete)
	require.Equal(s.T(), 100, res.Permutations)
	require.Len(s.T(), res.H0, 100)

	require.NotEmpty(s.T(), res.Clusters, "strong effect must survive threshold 10")
	require.Equal(s.T(), []int{0, 1, 2}, res.Clusters[0].Members)
	require.Equal(s.T(), cluster.MaxSummary(res.Clusters), res.H0[0],
		"H0[0] must be the identity arrangement's max summary")
	require.Less(s.T(), res.Results[0].PValue, 0.1)
}

// TestReproducible_AcrossJobs: identical seeds give identical H0 slot
// for slot, regardless of pool size.
func (s *RunSuite) TestReproducible_AcrossJobs() {
	obs := s.effectTensor(10)
	g := s.lineGraph()

	serial, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 64,
		permtest.WithSeed(3), permtest.WithJobs(1))
	require.NoError(s.T(), err)
	parallel, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 64,
		permtest.WithSeed(3), permtest.WithJobs(8))
	require.NoError(s.T(), err)

	require.Equal(s.T(), serial.H0, parallel.H0)
	require.Equal(s.T(), serial.Results, parallel.Results)
}

// TestSinglePermutation: with nPerm=1, H0 holds exactly the observed
// maximum and every observed cluster gets p = 1.0.
func (s *RunSuite) TestSinglePermutation() {
	obs := s.effectTensor(10)
	g := s.lineGraph()

	res, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Complete)
	require.Len(s.T(), res.H0, 1)
	require.Equal(s.T(), cluster.MaxSummary(res.Clusters), res.H0[0])
	for _, cr := range res.Results {
		require.Equal(s.T(), 1.0, cr.PValue)
	}
}

// TestInfiniteThreshold: +Inf threshold is degenerate but valid — no
// clusters, all-zero H0.
func (s *RunSuite) TestInfiniteThreshold() {
	obs := s.effectTensor(10)
	g := s.lineGraph()

	res, err := permtest.Run(obs, score.OneSampleT{}, g, math.Inf(1), 32,
		permtest.WithSeed(1))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Complete)
	require.Empty(s.T(), res.Clusters)
	require.Empty(s.T(), res.Results)
	for _, h := range res.H0 {
		require.Zero(s.T(), h)
	}
}

// TestMinPValueBound: no p-value is ever below 1/nPerm.
func (s *RunSuite) TestMinPValueBound() {
	obs := s.effectTensor(10)
	g := s.lineGraph()

	const nPerm = 50
	res, err := permtest.Run(obs, score.OneSampleT{}, g, 10, nPerm,
		permtest.WithSeed(11))
	require.NoError(s.T(), err)
	for _, cr := range res.Results {
		require.GreaterOrEqual(s.T(), cr.PValue, 1.0/nPerm)
	}
}

// TestTwoSample_Effect runs the relabeling design on pooled groups with
// a clear mean difference.
func (s *RunSuite) TestTwoSample_Effect() {
	// 12 pooled samples over 3 nodes: first 6 high at node 0, last 6 low.
	obs, err := tensor.New(12, 3, 1)
	require.NoError(s.T(), err)
	g, err := connectivity.NewSpatial(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(s.T(), err)
	for i := 0; i < 12; i++ {
		base := 0.0
		if i < 6 {
			base = 4
		}
		obs.Set(i, 0, 0, base+0.1*float64(i%3))
		obs.Set(i, 1, 0, 0.05*float64(i%4))
		obs.Set(i, 2, 0, -0.05*float64(i%3))
	}

	res, err := permtest.Run(obs, score.TwoSampleT{}, g, 5, 64,
		permtest.WithDesign(permtest.TwoSample),
		permtest.WithGroupSize(6),
		permtest.WithSeed(5),
	)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Complete)
	require.NotEmpty(s.T(), res.Clusters)
	require.Equal(s.T(), []int{0}, res.Clusters[0].Members)
	require.Less(s.T(), res.Results[0].PValue, 0.2)
}

// TestScoringFailureAborts: a scorer error is fatal and yields no
// partial result.
func (s *RunSuite) TestScoringFailureAborts() {
	obs := s.effectTensor(10)
	g := s.lineGraph()
	boom := errors.New("detector fell over")
	calls := 0
	sc := score.ScorerFunc(func(t *tensor.Tensor, assign []int) (tensor.StatMap, error) {
		calls++
		if calls > 3 {
			return nil, boom
		}

		return make(tensor.StatMap, t.NumNodes()), nil
	})

	res, err := permtest.Run(obs, sc, g, 1, 32, permtest.WithJobs(1))
	require.ErrorIs(s.T(), err, permtest.ErrScoring)
	require.ErrorIs(s.T(), err, boom)
	require.Nil(s.T(), res)
}

// TestCancellation: a cancelled context yields an incomplete result,
// not an error, and p-value access is refused.
func (s *RunSuite) TestCancellation() {
	obs := s.effectTensor(10)
	g := s.lineGraph()
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the run starts

	res, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 512,
		permtest.WithContext(ctx), permtest.WithSeed(2))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Complete)
	require.Nil(s.T(), res.Results)
	require.GreaterOrEqual(s.T(), res.Permutations, 1, "identity is always done")
	require.Less(s.T(), res.Permutations, 512)
	require.Len(s.T(), res.H0, res.Permutations)

	_, err = res.SignificantClusters(0.05)
	require.ErrorIs(s.T(), err, permtest.ErrIncompleteRun)
}

// TestValidation covers the upfront rejection paths.
func (s *RunSuite) TestValidation() {
	obs := s.effectTensor(4)
	g := s.lineGraph()

	// Nil inputs.
	_, err := permtest.Run(nil, score.OneSampleT{}, g, 1, 8)
	require.ErrorIs(s.T(), err, permtest.ErrNilInput)

	// Shape mismatch: 3-node graph vs 5-node tensor.
	small, err := connectivity.NewSpatial(3, [][2]int{{0, 1}})
	require.NoError(s.T(), err)
	_, err = permtest.Run(obs, score.OneSampleT{}, small, 1, 8)
	require.ErrorIs(s.T(), err, permtest.ErrShapeMismatch)

	// Permutation count below 1.
	_, err = permtest.Run(obs, score.OneSampleT{}, g, 1, 0)
	require.ErrorIs(s.T(), err, permtest.ErrOptionViolation)

	// 4 samples admit 2^4 = 16 sign patterns; 17 is too many.
	_, err = permtest.Run(obs, score.OneSampleT{}, g, 1, 17)
	require.ErrorIs(s.T(), err, permtest.ErrInsufficientPermutations)

	// Two-sample without a group size.
	_, err = permtest.Run(obs, score.TwoSampleT{}, g, 1, 8,
		permtest.WithDesign(permtest.TwoSample))
	require.ErrorIs(s.T(), err, permtest.ErrOptionViolation)

	// C(4,2) = 6 relabelings; 7 is too many.
	_, err = permtest.Run(obs, score.TwoSampleT{}, g, 1, 7,
		permtest.WithDesign(permtest.TwoSample), permtest.WithGroupSize(2))
	require.ErrorIs(s.T(), err, permtest.ErrInsufficientPermutations)

	// Invalid option values.
	_, err = permtest.Run(obs, score.OneSampleT{}, g, 1, 8, permtest.WithJobs(0))
	require.ErrorIs(s.T(), err, permtest.ErrOptionViolation)
	_, err = permtest.Run(obs, score.OneSampleT{}, g, 1, 8, permtest.WithDesign(99))
	require.ErrorIs(s.T(), err, permtest.ErrOptionViolation)

	// Bad threshold propagates from the clusterer.
	_, err = permtest.Run(obs, score.OneSampleT{}, g, -1, 8)
	require.ErrorIs(s.T(), err, cluster.ErrBadThreshold)
}

// TestDisjointBlocks wires the upfront coarsening check.
func (s *RunSuite) TestDisjointBlocks() {
	obs := s.effectTensor(6)
	g := s.lineGraph() // one connected component: any split must fail

	_, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 8,
		permtest.WithDisjointBlocks([][]int{{0, 1}, {2, 3, 4}}))
	require.ErrorIs(s.T(), err, connectivity.ErrNotDisjoint)

	res, err := permtest.Run(obs, score.OneSampleT{}, g, 10, 8,
		permtest.WithDisjointBlocks([][]int{{0, 1, 2, 3, 4}}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Complete)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}
