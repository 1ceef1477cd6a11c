package permtest_test

import (
	"testing"

	"github.com/katalvlaran/clusterperm/connectivity"
	"github.com/katalvlaran/clusterperm/permtest"
	"github.com/katalvlaran/clusterperm/score"
	"github.com/katalvlaran/clusterperm/tensor"
)

// benchmarkRun executes a one-sample test over a ring of nSpace
// vertices × nTime slices with the given permutation count and pool
// size. Data is deterministic with per-node structure so clustering
// does real work.
func benchmarkRun(b *testing.B, nSpace, nTime, nPerm, jobs int) {
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

	const nSamples = 16
	obs, err := tensor.New(nSamples, nSpace, nTime)
	if err != nil {
		b.Fatalf("New tensor failed: %v", err)
	}
	for i := 0; i < nSamples; i++ {
		for node := 0; node < obs.NumNodes(); node++ {
			v := float64((node%13)-6)/3 + 0.05*float64(i%5)
			obs.Set(i, node/nTime, node%nTime, v)
		}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err = permtest.Run(obs, score.OneSampleT{}, g, 2, nPerm,
			permtest.WithSeed(1), permtest.WithJobs(jobs))
		if err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_SmallSerial benchmarks 64 permutations on one worker.
func BenchmarkRun_SmallSerial(b *testing.B) {
	benchmarkRun(b, 64, 8, 64, 1)
}

// BenchmarkRun_SmallParallel benchmarks 64 permutations on four workers.
func BenchmarkRun_SmallParallel(b *testing.B) {
	benchmarkRun(b, 64, 8, 64, 4)
}

// BenchmarkRun_Medium benchmarks 256 permutations on a 256×16 grid.
func BenchmarkRun_Medium(b *testing.B) {
	benchmarkRun(b, 256, 16, 256, 4)
}
