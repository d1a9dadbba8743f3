// Package cahash defines the pipeline constants and sentinel errors for
// github.com/katalvlaran/tcahash.
package cahash

import "errors"

// Pipeline dimensions. The automaton lattice is exactly StateBits cells for
// the lifetime of one hash computation, and every digest is exactly
// DigestLen lowercase hexadecimal characters.
const (
	// StateBits is the automaton lattice width and the digest width in bits.
	StateBits = 256
	// DigestLen is the digest length in hexadecimal characters.
	DigestLen = StateBits / 4
)

// ErrBadStateLen indicates an extraction input that is not StateBits cells.
var ErrBadStateLen = errors.New("cahash: state must be exactly 256 cells")
