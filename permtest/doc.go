// Package permtest runs spatio-temporal cluster-based permutation
// tests: it drives a pluggable scorer and the clusterer over resampled
// arrangements of the observations, accumulates the max-cluster null
// distribution, and produces family-wise-error corrected p-values.
//
// 🚀 What is a cluster permutation test?
//
//	A statistic computed at thousands of (space,time) points cannot be
//	thresholded point-wise without drowning in false positives. The
//	cluster permutation test instead (1) clusters supra-threshold
//	points through a connectivity graph, (2) summarizes each cluster
//	by its mass or size, and (3) compares observed summaries against
//	the distribution of the *maximum* summary under resampling — sign
//	flips for one-sample designs, group relabelings for two-sample
//	designs. Retaining only the per-permutation maximum is what
//	controls the family-wise error rate across all candidate clusters
//	at once.
//
// ✨ Key features:
//   - OneSample (sign-flip) and TwoSample (relabeling) designs
//   - identity arrangement always included → p ≥ 1/n_permutations
//   - fixed worker pool (errgroup), permutations fan out embarrassingly
//     parallel; reproducible for a given seed at any worker count
//   - cooperative cancellation between permutations; incomplete runs
//     are flagged, not errors
//   - explicit failure taxonomy: nothing is silently capped or retried
//
// ⚙️ Usage:
//
//	res, err := permtest.Run(obs, score.OneSampleT{}, g, thr, 1024,
//	  permtest.WithSeed(42),
//	  permtest.WithJobs(8),
//	)
//	if err != nil { ... }
//	if !res.Complete { ... } // cancelled: H0 is a partial multiset
//	for _, cr := range res.Results {
//	  fmt.Println(cr.Members, cr.Summary, cr.PValue)
//	}
//
// Concurrency model: the observation tensor and connectivity graph are
// read-only for the duration of a run; each worker owns its scratch and
// writes exactly one H0 slot per permutation. No synchronization beyond
// the final gather.
package permtest
