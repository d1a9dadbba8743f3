// Package policy defines the traffic-context types, the parameter tables and
// the sentinel errors for github.com/katalvlaran/tcahash.
package policy

import "errors"

// ErrUnknownSignal indicates a signal state outside the recognized enumeration.
var ErrUnknownSignal = errors.New("policy: unknown signal state")

// SignalState is the closed enumeration of traffic-signal phases.
// The zero value is Green.
type SignalState uint8

const (
	// Green is a free-flow phase: local, fast mixing.
	Green SignalState = iota
	// Yellow is a transition phase: medium-range coordination.
	Yellow
	// Red is a congested phase: wide-area coordination.
	Red
	// Emergency overrides all other phases: maximum coordination.
	Emergency

	numSignalStates
)

// signalNames maps SignalState ordinals to their canonical wire spellings.
var signalNames = [numSignalStates]string{"GREEN", "YELLOW", "RED", "EMERGENCY"}

// String returns the canonical upper-case spelling, or "UNKNOWN" for
// values outside the enumeration.
func (s SignalState) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return signalNames[s]
}

// Valid reports whether s is one of the four recognized states.
func (s SignalState) Valid() bool {
	return s < numSignalStates
}

// ParseSignalState converts a canonical spelling ("GREEN", "YELLOW", "RED",
// "EMERGENCY") into a SignalState. Returns ErrUnknownSignal for anything else;
// matching is exact, not case-folded, so a misspelled state is a construction
// error rather than a silent fallthrough.
func ParseSignalState(name string) (SignalState, error) {
	for i, n := range signalNames {
		if n == name {
			return SignalState(i), nil
		}
	}
	return 0, ErrUnknownSignal
}

// Context is the immutable per-invocation traffic context.
// Density is nominally in [0,1], Urgency in [0,10]; Select clamps both.
type Context struct {
	// Density is the observed traffic density: 0.0 = empty, 1.0 = saturated.
	Density float64
	// Signal is the current signal phase.
	Signal SignalState
	// Urgency is the priority level, 0 (none) to 10 (emergency vehicle).
	Urgency int
}

// Params holds the evolution parameters derived from a Context.
// Immutable once computed.
type Params struct {
	// Rule is the elementary CA rule number; Select only emits 30, 110 or 184.
	Rule uint8
	// Radius is the neighborhood half-width, one of {1, 2, 3, 5}.
	Radius int
	// Steps is the number of evolution generations, in [BaseSteps, MaxSteps].
	Steps int
}

// Step-count contract constants.
const (
	// BaseSteps is the floor of the step count for any context.
	BaseSteps = 64
	// MaxSteps caps the step count regardless of context.
	MaxSteps = 228

	// MaxUrgency is the nominal upper bound of Context.Urgency.
	MaxUrgency = 10
)
