// Package tensor holds the numeric containers shared by the clusterperm
// pipeline: the observation tensor and the per-node statistic map.
//
// 🚀 What is a Tensor?
//
//	A dense, row-major block of float64 values with shape
//	(NSamples × NSpace × NTime). Each sample is one observation
//	(a subject, a trial, ...) measured at every spatial node and
//	time step. Once a permutation run starts the tensor is treated
//	as read-only; nothing in this module mutates it.
//
// Node indexing:
//
//	Spatio-temporal points are flattened to a single node index
//	node = space*NTime + time, so the values of one spatial vertex
//	across time are contiguous. StatMap, the connectivity graph and
//	the clusterer all share this index space.
//
// ⚙️ Usage:
//
//	obs, err := tensor.New(nSamples, nSpace, nTime)
//	if err != nil { ... }
//	obs.Set(s, v, t, value)
//
//	// or wrap an existing flat buffer without copying:
//	obs, err := tensor.FromFlat(nSamples, nSpace, nTime, data)
//
// Memory: O(NSamples·NSpace·NTime), one float64 per point.
package tensor
