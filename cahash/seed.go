package cahash

import (
	"crypto/sha256"

	"github.com/katalvlaran/tcahash/automaton"
	"github.com/katalvlaran/tcahash/policy"
)

// Seed derives the initial automaton state from input bytes and a traffic
// context. The expansion is the SHA-256 digest of data laid out MSB-first;
// the context perturbation rotates by the quantized density and flips a
// signal-dependent comb of cells. Deterministic: identical (data, ctx) pairs
// always produce identical states.
// Complexity: O(len(data)) for the digest plus O(StateBits).
func Seed(data []byte, ctx policy.Context) automaton.State {
	sum := sha256.Sum256(data)

	s := make(automaton.State, StateBits)
	for i := 0; i < StateBits; i++ {
		s[i] = (sum[i/8] >> (7 - i%8)) & 1
	}

	// Density rotation: quantize the clamped density to 8 bits and rotate
	// the lattice left by that many cells.
	rot := int(policy.ClampDensity(ctx.Density) * 255)
	s = rotateLeft(s, rot)

	// Signal comb: flip every 4th cell starting at the signal ordinal, so
	// each signal state touches a disjoint fixed set of 64 positions.
	if ctx.Signal.Valid() {
		for i := int(ctx.Signal); i < StateBits; i += 4 {
			s[i] ^= 1
		}
	}

	return s
}

// rotateLeft returns s rotated left by k cells.
func rotateLeft(s automaton.State, k int) automaton.State {
	n := len(s)
	k %= n
	if k == 0 {
		return s
	}
	out := make(automaton.State, n)
	copy(out, s[k:])
	copy(out[n-k:], s[:k])
	return out
}
