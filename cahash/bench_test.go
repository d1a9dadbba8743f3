package cahash_test

import (
	"testing"

	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

// benchPayload is a realistic block-sized input.
var benchPayload = []byte("block_12345|f3a9…|1699800000|tx_a|tx_b|tx_c|8841")

// BenchmarkSum_Green measures the lightest pipeline: rule 30, radius 1,
// low-band steps.
func BenchmarkSum_Green(b *testing.B) {
	ctx := policy.Context{Density: 0.2, Signal: policy.Green}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cahash.Sum(benchPayload, ctx)
	}
}

// BenchmarkSum_Emergency measures the heaviest pipeline: rule 184, radius 5,
// capped steps.
func BenchmarkSum_Emergency(b *testing.B) {
	ctx := policy.Context{Density: 1.0, Signal: policy.Emergency, Urgency: 10}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cahash.Sum(benchPayload, ctx)
	}
}

// BenchmarkSum_Parallel measures independent invocations across workers; the
// pipeline shares no state, so this should scale with GOMAXPROCS.
func BenchmarkSum_Parallel(b *testing.B) {
	ctx := policy.Context{Density: 0.9, Signal: policy.Red}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = cahash.Sum(benchPayload, ctx)
		}
	})
}
