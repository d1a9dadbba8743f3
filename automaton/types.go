// Package automaton defines the state type and sentinel errors for the
// cellular-automaton engine of github.com/katalvlaran/tcahash.
package automaton

import "errors"

// Sentinel errors for automaton operations.
var (
	// ErrEmptyState indicates a state with no cells.
	ErrEmptyState = errors.New("automaton: state must have at least one cell")
	// ErrBadCell indicates a cell value other than 0 or 1.
	ErrBadCell = errors.New("automaton: cells must hold 0 or 1")
	// ErrBadRadius indicates a radius < 1 or a neighborhood wider than the lattice.
	ErrBadRadius = errors.New("automaton: radius must be ≥ 1 and 2·radius+1 must not exceed the state length")
	// ErrNegativeSteps indicates a negative generation count.
	ErrNegativeSteps = errors.New("automaton: step count must be non-negative")
)

// State is an ordered sequence of binary cells (0/1) on a circular lattice.
// A State is owned by exactly one evolution run; Evolve never mutates its
// input and returns a fresh State.
type State []uint8

// Clone returns a deep copy of the state.
// Complexity: O(n).
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Ones returns the number of set cells.
// Complexity: O(n).
func (s State) Ones() int {
	n := 0
	for _, c := range s {
		if c == 1 {
			n++
		}
	}
	return n
}

// validate checks the structural invariants shared by all engine entry points.
func (s State) validate() error {
	if len(s) == 0 {
		return ErrEmptyState
	}
	for _, c := range s {
		if c > 1 {
			return ErrBadCell
		}
	}
	return nil
}
