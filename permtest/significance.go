package permtest

import (
	"github.com/katalvlaran/clusterperm/cluster"
)

// Evaluate assigns each observed cluster its family-wise-error
// corrected empirical p-value against the null distribution:
//
//	p = (1 + #{h in H0 : h ≥ s}) / (1 + |H0|)
//
// where s is the cluster's summary statistic. Because H0 holds the
// maximum summary over all candidate clusters per permutation, this
// one-sided p-value is already corrected across every candidate
// cluster simultaneously; no further multiple-comparison adjustment
// applies. Output order matches the input order.
//
// Time: O(|clusters|·|H0|). Memory: O(|clusters|).
func Evaluate(clusters []cluster.Cluster, h0 NullDistribution) []ClusterResult {
	out := make([]ClusterResult, len(clusters))
	for i, c := range clusters {
		exceed := 0
		for _, h := range h0 {
			if h >= c.Summary {
				exceed++
			}
		}
		out[i] = ClusterResult{
			Cluster: c,
			PValue:  float64(1+exceed) / float64(1+len(h0)),
		}
	}

	return out
}
