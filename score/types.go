// Package score defines core types and sentinel errors for the score
// subpackage of github.com/katalvlaran/clusterperm.
package score

import (
	"errors"

	"github.com/katalvlaran/clusterperm/tensor"
)

// Sentinel errors for scoring operations.
var (
	// ErrTooFewSamples indicates a design with too few observations to
	// form the statistic (one-sample: n < 2; two-sample: a group < 2).
	ErrTooFewSamples = errors.New("score: too few samples for statistic")

	// ErrBadAssignment indicates an assignment slice whose length does
	// not match the sample count or whose entries are invalid for the
	// scorer (one-sample wants ±1, two-sample wants 0/1).
	ErrBadAssignment = errors.New("score: invalid sample assignment")

	// ErrBadQuantile indicates a threshold request with p outside (0,1)
	// or non-positive degrees of freedom.
	ErrBadQuantile = errors.New("score: invalid quantile parameters")
)

// Scorer maps an observation tensor and a per-sample assignment to a
// per-node statistic map. Implementations must be deterministic given
// identical inputs, must not retain the tensor, and must be safe for
// concurrent use — the permutation engine calls Score from several
// workers at once.
type Scorer interface {
	Score(obs *tensor.Tensor, assign []int) (tensor.StatMap, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(obs *tensor.Tensor, assign []int) (tensor.StatMap, error)

// Score calls the wrapped function.
func (f ScorerFunc) Score(obs *tensor.Tensor, assign []int) (tensor.StatMap, error) {
	return f(obs, assign)
}
