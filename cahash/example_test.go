// File: cahash/example_test.go
package cahash_test

import (
	"fmt"

	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

// ExampleSum hashes the same payload under a light and a heavy traffic
// context. The digest is always 64 hex characters, reproducible for
// identical arguments, and different across contexts.
func ExampleSum() {
	light := policy.Context{Density: 0.2, Signal: policy.Green}
	heavy := policy.Context{Density: 0.9, Signal: policy.Red}

	a, _ := cahash.Sum([]byte("block_data"), light)
	b, _ := cahash.Sum([]byte("block_data"), light)
	c, _ := cahash.Sum([]byte("block_data"), heavy)

	fmt.Println(len(a), a == b, a == c)

	// Output:
	// 64 true false
}

// ExampleSumWithParams shows how the selected evolution parameters can be
// observed alongside the digest.
func ExampleSumWithParams() {
	ctx := policy.Context{Density: 0.5, Signal: policy.Emergency, Urgency: 10}
	_, params, _ := cahash.SumWithParams([]byte("block_data"), ctx)

	fmt.Printf("rule=%d radius=%d steps=%d\n", params.Rule, params.Radius, params.Steps)

	// Output:
	// rule=184 radius=5 steps=228
}
