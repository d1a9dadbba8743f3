// Package policy maps a traffic context onto cellular-automaton evolution
// parameters: rule number, neighborhood radius and step count.
//
// What:
//
//   - SignalState is a closed enumeration of the four recognized signal phases.
//   - Context carries the caller-supplied traffic signals for one hash invocation.
//   - Select derives Params deterministically; identical contexts always yield
//     identical parameters.
//
// Why:
//
//   - Heavier traffic buys more evolution work: congested, urgent contexts get
//     wider neighborhoods and more steps, light traffic gets fast local mixing.
//   - Keeping the mapping pure and table-driven makes the step-count contract
//     directly testable.
//
// Mapping:
//
//   - GREEN     → rule 30,  radius 1
//   - YELLOW    → rule 110, radius 2
//   - RED       → rule 110, radius 3
//   - EMERGENCY → rule 184, radius 5
//
// YELLOW deliberately shares rule 110 with RED: rule 90's table is linear
// (output = left XOR right), so combined with the engine's parity mask every
// rule 90 generation is additive, and on a 256-cell ring the iterated additive
// map is nilpotent: long evolutions collapse to the all-zero state. Rule 110
// is nonlinear and keeps digests balanced, so it is the documented choice.
//
// Steps:
//
//	steps = clamp(64 + ⌊density·64⌋ + urgency·10 + boost(signal), 64, 228)
//
// with boost GREEN=0, YELLOW=16, RED=32, EMERGENCY=64. Density is clamped to
// [0,1] and urgency to [0,10] before use; out-of-range values are never
// rejected and never produce unbounded step counts.
//
// Errors:
//
//   - ErrUnknownSignal: signal state outside the four enumeration members.
//
// Complexity: Select is O(1), allocation-free.
package policy
