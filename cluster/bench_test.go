package cluster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clusterperm/cluster"
	"github.com/katalvlaran/clusterperm/connectivity"
	"github.com/katalvlaran/clusterperm/tensor"
)

// benchmarkFindClusters runs FindClusters on an nSpace-vertex ring
// expanded over nTime slices, with a sinusoidal statistic so roughly
// half the nodes are active in alternating signed bands.
func benchmarkFindClusters(b *testing.B, nSpace, nTime int, opts cluster.Options) {
	edges := make([][2]int, nSpace)
	for v := 0; v < nSpace; v++ {
		edges[v] = [2]int{v, (v + 1) % nSpace}
	}
	sp, err := connectivity.NewSpatial(nSpace, edges)
	if err != nil {
		b.Fatalf("NewSpatial failed: %v", err)
	}
	g, err := sp.ExpandTime(nTime)
	if err != nil {
		b.Fatalf("ExpandTime failed: %v", err)
	}

	stat := make(tensor.StatMap, g.NumNodes())
	for v := range stat {
		stat[v] = 2 * math.Sin(float64(v)/7)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = cluster.FindClusters(stat, 1, g, opts); err != nil {
			b.Fatalf("FindClusters failed: %v", err)
		}
	}
}

// BenchmarkFindClusters_MassSmall benchmarks Mass summaries on a 100×10 grid.
func BenchmarkFindClusters_MassSmall(b *testing.B) {
	benchmarkFindClusters(b, 100, 10, cluster.DefaultOptions())
}

// BenchmarkFindClusters_MassLarge benchmarks Mass summaries on a 2000×50 grid.
func BenchmarkFindClusters_MassLarge(b *testing.B) {
	benchmarkFindClusters(b, 2000, 50, cluster.DefaultOptions())
}

// BenchmarkFindClusters_Size benchmarks Size summaries on a 2000×50 grid.
func BenchmarkFindClusters_Size(b *testing.B) {
	opts := cluster.DefaultOptions()
	opts.Policy = cluster.Size
	benchmarkFindClusters(b, 2000, 50, opts)
}
