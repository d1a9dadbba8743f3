package analysis_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tcahash/analysis"
)

// shaHash is a cheap, well-mixed reference HashFunc for harness tests.
func shaHash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// constHash returns the same digest for every input.
func constHash(digest string) analysis.HashFunc {
	return func([]byte) (string, error) { return digest, nil }
}

// parityHash maps the low bit of the first byte onto an all-zero or all-one
// digest, giving a 100% avalanche on a low-bit flip.
func parityHash(data []byte) (string, error) {
	if len(data) > 0 && data[0]&1 == 1 {
		return strings.Repeat("f", 64), nil
	}
	return strings.Repeat("0", 64), nil
}

//----------------------------------------------------------------------------//
// Avalanche and bit balance
//----------------------------------------------------------------------------//

// TestAvalanche_Extremes pins the metric on degenerate hashes: a constant
// digest has zero avalanche, a parity flipper has full avalanche.
func TestAvalanche_Extremes(t *testing.T) {
	pct, err := analysis.Avalanche(constHash(strings.Repeat("a", 64)), []byte("x"))
	require.NoError(t, err)
	require.Equal(t, 0.0, pct)

	pct, err = analysis.Avalanche(parityHash, []byte{0x02})
	require.NoError(t, err)
	require.Equal(t, 100.0, pct)
}

// TestAvalanche_Errors covers the fatal probe paths.
func TestAvalanche_Errors(t *testing.T) {
	_, err := analysis.Avalanche(nil, []byte("x"))
	require.ErrorIs(t, err, analysis.ErrNilHash)

	_, err = analysis.Avalanche(shaHash, nil)
	require.ErrorIs(t, err, analysis.ErrEmptyData)

	_, err = analysis.Avalanche(constHash("not-hex!"), []byte("x"))
	require.ErrorIs(t, err, analysis.ErrBadDigest)
}

// TestAvalancheMean_ReferenceHash sanity-checks the metric against SHA-256,
// which must sit near 50%.
func TestAvalancheMean_ReferenceHash(t *testing.T) {
	inputs := make([][]byte, 64)
	for i := range inputs {
		inputs[i] = []byte(strings.Repeat("block_", 3) + strings.Repeat("x", i+1))
	}
	pct, err := analysis.AvalancheMean(shaHash, inputs)
	require.NoError(t, err)
	require.InDelta(t, 50.0, pct, 5.0)

	_, err = analysis.AvalancheMean(shaHash, nil)
	require.ErrorIs(t, err, analysis.ErrNoInputs)
}

// TestBitBalance_Extremes pins the metric on degenerate digests.
func TestBitBalance_Extremes(t *testing.T) {
	inputs := [][]byte{[]byte("a"), []byte("b")}

	pct, err := analysis.BitBalance(constHash(strings.Repeat("f", 64)), inputs)
	require.NoError(t, err)
	require.Equal(t, 100.0, pct)

	pct, err = analysis.BitBalance(constHash(strings.Repeat("0", 64)), inputs)
	require.NoError(t, err)
	require.Equal(t, 0.0, pct)

	_, err = analysis.BitBalance(shaHash, nil)
	require.ErrorIs(t, err, analysis.ErrNoInputs)
}

// TestThroughput verifies the timer produces a positive mean and surfaces
// hash failures.
func TestThroughput(t *testing.T) {
	d, err := analysis.Throughput(shaHash, []byte("x"), 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, int64(d), int64(0))

	boom := errors.New("boom")
	_, err = analysis.Throughput(func([]byte) (string, error) { return "", boom }, []byte("x"), 3)
	require.ErrorIs(t, err, boom)
}
