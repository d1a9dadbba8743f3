// File: analysis/example_test.go
package analysis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tcahash/analysis"
	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

// ExampleMine sweeps nonces until a digest with one leading zero appears,
// a miniature proof-of-work round over the adaptive pipeline.
func ExampleMine() {
	ctx := policy.Context{Density: 0.2, Signal: policy.Green}
	h := func(data []byte) (string, error) { return cahash.Sum(data, ctx) }

	res, err := analysis.Mine(h, []byte("block_timestamp_1234567890"), 1, 10000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Digest[:1])

	// Output:
	// true 0
}

// ExampleMineParallel fans the same sweep across workers; invocations share
// no state, so the sweep parallelizes without synchronization.
func ExampleMineParallel() {
	hctx := policy.Context{Density: 0.9, Signal: policy.Red}
	h := func(data []byte) (string, error) { return cahash.Sum(data, hctx) }

	res, err := analysis.MineParallel(context.Background(), h,
		[]byte("block_timestamp_1234567890"), 1, 10000, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Digest[:1])

	// Output:
	// true 0
}
