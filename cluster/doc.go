// Package cluster groups above-threshold points of a statistic map into
// connected, same-sign components over a connectivity graph.
//
// 🚀 What is a cluster here?
//
//	A maximal set of nodes whose statistic exceeds the threshold in
//	magnitude, all of the same sign, mutually reachable through the
//	connectivity graph without leaving the set. A positive excursion
//	never merges with a negative one, even when they touch.
//
// ✨ Key features:
//   - union-find (path compression + union by rank) labeling — no
//     recursive flood fill, safe on large meshes
//   - Mass (Σ|value|) or Size (member count) summary statistic
//   - MinSize policy for dropping small components
//   - +Inf threshold is valid and yields the empty result
//   - deterministic output order: descending summary, ties by
//     ascending minimum node ID
//
// ⚙️ Usage:
//
//	opts := cluster.DefaultOptions() // Mass summary, MinSize 1
//	clusters, err := cluster.FindClusters(stat, threshold, g, opts)
//	for _, c := range clusters {
//	  fmt.Println(c.Sign, c.Summary, c.Members)
//	}
//
// Time:   O(N + E·α(N)) per call.
// Memory: O(N) scratch.
package cluster
