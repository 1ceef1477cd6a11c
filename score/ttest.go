package score

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/clusterperm/tensor"
)

// OneSampleT scores each node with the one-sample Student's t of the
// sign-adjusted sample values:
//
//	t = mean(a_i·x_i) / (sd(a_i·x_i) / √n)
//
// where a_i ∈ {+1,-1} is the assignment. With all signs +1 this is the
// observed one-sample t map; flipped signs realize the sign-flip null.
//
// Nodes with zero variance score 0 when the mean is also 0, otherwise
// ±Inf (a constant non-zero effect is infinitely certain).
type OneSampleT struct{}

// Score implements Scorer.
//
// Error Conditions:
//   - ErrTooFewSamples : fewer than 2 samples.
//   - ErrBadAssignment : len(assign) != NSamples or an entry ∉ {+1,-1}.
func (OneSampleT) Score(obs *tensor.Tensor, assign []int) (tensor.StatMap, error) {
	n := obs.NSamples()
	if n < 2 {
		return nil, fmt.Errorf("%w: one-sample t needs ≥ 2 samples, got %d", ErrTooFewSamples, n)
	}
	if len(assign) != n {
		return nil, fmt.Errorf("%w: %d assignments for %d samples", ErrBadAssignment, len(assign), n)
	}
	for i, a := range assign {
		if a != 1 && a != -1 {
			return nil, fmt.Errorf("%w: sign %d at sample %d, want ±1", ErrBadAssignment, a, i)
		}
	}

	out := make(tensor.StatMap, obs.NumNodes())
	vals := make([]float64, n) // per-call scratch keeps Score concurrency-safe
	sqrtN := math.Sqrt(float64(n))
	for node := range out {
		for i := 0; i < n; i++ {
			vals[i] = float64(assign[i]) * obs.AtNode(i, node)
		}
		mean := stat.Mean(vals, nil)
		sd := stat.StdDev(vals, nil)
		out[node] = tValue(mean, sd/sqrtN)
	}

	return out, nil
}

// TwoSampleT scores each node with Welch's unequal-variance t between
// the samples labeled 0 and the samples labeled 1:
//
//	t = (mean₀ − mean₁) / √(var₀/n₀ + var₁/n₁)
//
// Relabeling realizes the two-sample permutation null.
type TwoSampleT struct{}

// Score implements Scorer.
//
// Error Conditions:
//   - ErrBadAssignment : len(assign) != NSamples or a label ∉ {0,1}.
//   - ErrTooFewSamples : either group has fewer than 2 members.
func (TwoSampleT) Score(obs *tensor.Tensor, assign []int) (tensor.StatMap, error) {
	n := obs.NSamples()
	if len(assign) != n {
		return nil, fmt.Errorf("%w: %d assignments for %d samples", ErrBadAssignment, len(assign), n)
	}
	var n0, n1 int
	for i, a := range assign {
		switch a {
		case 0:
			n0++
		case 1:
			n1++
		default:
			return nil, fmt.Errorf("%w: label %d at sample %d, want 0 or 1", ErrBadAssignment, a, i)
		}
	}
	if n0 < 2 || n1 < 2 {
		return nil, fmt.Errorf("%w: Welch's t needs ≥ 2 per group, got %d and %d", ErrTooFewSamples, n0, n1)
	}

	out := make(tensor.StatMap, obs.NumNodes())
	g0 := make([]float64, 0, n0)
	g1 := make([]float64, 0, n1)
	for node := range out {
		g0, g1 = g0[:0], g1[:0]
		for i := 0; i < n; i++ {
			if assign[i] == 0 {
				g0 = append(g0, obs.AtNode(i, node))
			} else {
				g1 = append(g1, obs.AtNode(i, node))
			}
		}
		m0, m1 := stat.Mean(g0, nil), stat.Mean(g1, nil)
		v0, v1 := stat.Variance(g0, nil), stat.Variance(g1, nil)
		se := math.Sqrt(v0/float64(n0) + v1/float64(n1))
		out[node] = tValue(m0-m1, se)
	}

	return out, nil
}

// tValue forms diff/se with the zero-variance convention: 0 when the
// effect is also 0, signed infinity otherwise.
func tValue(diff, se float64) float64 {
	if se == 0 {
		if diff == 0 {
			return 0
		}

		return math.Copysign(math.Inf(1), diff)
	}

	return diff / se
}
