// Package score defines the pluggable scoring capability that maps an
// observation tensor to a per-node statistic map, plus built-in
// t-statistic scorers and parametric threshold helpers.
//
// 🚀 What is a Scorer?
//
//	A stateless, deterministic function from (tensor, per-sample
//	assignment) to a statistic map. The permutation engine never looks
//	inside it: it permutes the assignment and re-scores, so t-tests,
//	F-tests or any custom statistic can be substituted without touching
//	the clustering or permutation logic.
//
//	The assignment slice carries the design:
//	  • one-sample  — a sign (+1 or -1) per sample (sign-flip design)
//	  • two-sample  — a group label (0 or 1) per sample
//
// ✨ Built-ins:
//   - OneSampleT — Student's one-sample t per node over sign-adjusted
//     samples (the classic paired / within-subject contrast).
//   - TwoSampleT — Welch's unequal-variance t per node between the two
//     labeled groups.
//   - TThreshold / FThreshold — cluster-forming thresholds from the
//     Student's t and F quantiles, the usual way a threshold is chosen
//     from a point-wise p-value before clustering.
//
// ⚙️ Usage:
//
//	thr, _ := score.TThreshold(0.001, float64(nSamples-1))
//	stat, err := score.OneSampleT{}.Score(obs, signs)
//
// All scorers are safe for concurrent use; scratch is per call.
package score
