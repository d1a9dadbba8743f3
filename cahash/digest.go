package cahash

import (
	"encoding/hex"

	"github.com/katalvlaran/tcahash/automaton"
)

// Extract converts a post-evolution 256-cell state into the 64-character
// lowercase hexadecimal digest. Each group of 4 consecutive cells maps to one
// hex digit, most significant cell first; the encoding is position-preserving
// and loses no information beyond the bit→hex grouping.
// Returns ErrBadStateLen unless the state is exactly StateBits cells, and
// automaton.ErrBadCell if any cell is not binary.
// Complexity: O(StateBits).
func Extract(s automaton.State) (string, error) {
	if len(s) != StateBits {
		return "", ErrBadStateLen
	}
	buf := make([]byte, StateBits/8)
	for i, c := range s {
		if c > 1 {
			return "", automaton.ErrBadCell
		}
		buf[i/8] |= c << (7 - i%8)
	}
	return hex.EncodeToString(buf), nil
}
