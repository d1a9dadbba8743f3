// File: automaton/example_test.go
package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/tcahash/automaton"
)

// ExampleEvolve grows the first generations of rule 90 from a single seed,
// reproducing Pascal's triangle mod 2 on a circular lattice.
func ExampleEvolve() {
	seed := make(automaton.State, 11)
	seed[5] = 1

	for steps := 0; steps <= 3; steps++ {
		s, _ := automaton.Evolve(seed, 90, 1, steps)
		fmt.Println(render(s))
	}

	// Output:
	// .....#.....
	// ....#.#....
	// ...#...#...
	// ..#.#.#.#..
}

// render draws a state as dots and hashes.
func render(s automaton.State) string {
	out := make([]byte, len(s))
	for i, c := range s {
		if c == 1 {
			out[i] = '#'
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
