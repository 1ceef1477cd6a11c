// Package clusterperm is an in-memory engine for spatio-temporal
// cluster-based permutation tests — from connectivity graphs to
// family-wise-error corrected cluster p-values.
//
// 🚀 What is clusterperm?
//
//	A statistic computed at every (space, time) point of a dataset
//	faces a massive multiple-comparisons problem. clusterperm solves
//	it the cluster-permutation way:
//		• Connectivity: build an immutable spatio-temporal adjacency
//		• Clustering: group supra-threshold, same-sign points into
//		  connected components (union-find, no recursion)
//		• Permutation: sign-flip or relabel the observations, rescore,
//		  recluster, keep the max cluster summary per permutation
//		• Significance: empirical p-values against the max-statistic
//		  null — corrected across all candidate clusters at once
//
// ✨ Why choose clusterperm?
//
//   - Pluggable statistics – one Scorer interface; t, F or custom maps
//   - Deterministic – seedable draws, reproducible at any worker count
//   - Parallel – permutations fan out over a fixed worker pool
//   - Explicit failures – sentinel errors, nothing capped or retried
//
// Everything is organized under five subpackages:
//
//	tensor/       — observation tensor & statistic map containers
//	connectivity/ — spatial adjacency + spatio-temporal expansion
//	cluster/      — sign-aware connected-component clustering
//	score/        — Scorer interface, t statistics, thresholds
//	permtest/     — permutation engine & significance evaluation
//
// Quick sketch:
//
//	   samples × space × time          max summary per permutation
//	   ┌───────────────┐   score   ┌─────────┐  flip/relabel × N
//	   │  observations │ ────────▶ │ stat map│ ──────────────▶ H0
//	   └───────────────┘           └─────────┘
//	                                    │ cluster
//	                                    ▼
//	                         observed clusters ──▶ p-values vs H0
//
// See each subpackage's doc.go and example_test.go for usage.
package clusterperm
