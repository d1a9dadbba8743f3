// Package cahash implements the traffic-adaptive hash pipeline:
// seeding, automaton evolution and digest extraction.
//
// What:
//
//   - Seed turns arbitrary input bytes plus a traffic context into the initial
//     256-cell automaton state.
//   - Sum runs the full pipeline — Seed → policy.Select → automaton.Evolve →
//     Extract — and returns a 64-character lowercase hexadecimal digest.
//   - SumWithParams additionally reports the evolution parameters used, so the
//     step-count contract is observable without reaching into internals.
//   - Extract converts a post-evolution state into the digest: four
//     consecutive cells per hex digit, most significant cell first.
//
// Seeding:
//
//	The 256-bit seed is the SHA-256 digest of the input, expanded MSB-first
//	into cells — every input bit influences the whole seed, so single-bit
//	input changes perturb roughly half of it regardless of input length.
//	The context then perturbs the seed deterministically: the state rotates
//	left by ⌊clamp(density)·255⌋ cells and every 4th cell starting at the
//	signal state's ordinal is flipped. Two calls with identical bytes but
//	different contexts therefore start from different states. This is not a
//	security-critical derivation; it only needs determinism and sensitivity.
//
// Concurrency:
//
//	The pipeline is pure and synchronous. Each invocation owns its state, so
//	any number of invocations may run in parallel with no synchronization.
//
// Errors:
//
//   - policy.ErrUnknownSignal: context carries an out-of-enum signal state.
//   - ErrBadStateLen: Extract received a state that is not 256 cells.
//
// tcahash makes no claim of cryptographic security; the digest's avalanche
// and bit-balance behavior is pinned statistically by the package tests.
//
// Complexity: Sum is O(steps × 256 × radius); steps ≤ 228.
package cahash
