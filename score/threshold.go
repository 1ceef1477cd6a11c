package score

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// TThreshold returns the cluster-forming threshold for a t-statistic
// map: the upper critical value of Student's t with df degrees of
// freedom at point-wise tail probability p, i.e. -Quantile(p). Points
// whose |t| exceeds it are candidates for clustering.
//
// Typical use: TThreshold(0.001, float64(nSamples-1)).
//
// Error Conditions:
//   - ErrBadQuantile : p outside (0,1) or df ≤ 0.
func TThreshold(p, df float64) (float64, error) {
	if !(p > 0 && p < 1) || df <= 0 {
		return 0, fmt.Errorf("%w: p=%v df=%v", ErrBadQuantile, p, df)
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return -dist.Quantile(p), nil
}

// FThreshold returns the cluster-forming threshold for an F-statistic
// map: the (1-p) quantile of the F distribution with (df1, df2) degrees
// of freedom.
//
// Error Conditions:
//   - ErrBadQuantile : p outside (0,1) or non-positive df.
func FThreshold(p, df1, df2 float64) (float64, error) {
	if !(p > 0 && p < 1) || df1 <= 0 || df2 <= 0 {
		return 0, fmt.Errorf("%w: p=%v df1=%v df2=%v", ErrBadQuantile, p, df1, df2)
	}
	dist := distuv.F{D1: df1, D2: df2}

	return dist.Quantile(1 - p), nil
}
