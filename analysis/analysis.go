package analysis

import (
	"math/bits"
	"strconv"
	"time"
)

// Avalanche hashes data, flips the low bit of its first byte, hashes again,
// and returns the percentage of digest bits that changed. Near 50% indicates
// good diffusion.
// Complexity: two hash invocations.
func Avalanche(h HashFunc, data []byte) (float64, error) {
	if h == nil {
		return 0, ErrNilHash
	}
	if len(data) == 0 {
		return 0, ErrEmptyData
	}

	base, err := h(data)
	if err != nil {
		return 0, err
	}
	flipped := append([]byte(nil), data...)
	flipped[0] ^= 0x01
	alt, err := h(flipped)
	if err != nil {
		return 0, err
	}

	diff, err := diffBits(base, alt)
	if err != nil {
		return 0, err
	}
	return float64(diff) / float64(len(base)*4) * 100, nil
}

// AvalancheMean averages Avalanche over a sample of inputs.
func AvalancheMean(h HashFunc, inputs [][]byte) (float64, error) {
	if h == nil {
		return 0, ErrNilHash
	}
	if len(inputs) == 0 {
		return 0, ErrNoInputs
	}
	total := 0.0
	for _, data := range inputs {
		pct, err := Avalanche(h, data)
		if err != nil {
			return 0, err
		}
		total += pct
	}
	return total / float64(len(inputs)), nil
}

// BitBalance returns the percentage of set bits across the digests of a
// sample of inputs. Near 50% indicates a balanced output distribution.
// Complexity: one hash invocation per input.
func BitBalance(h HashFunc, inputs [][]byte) (float64, error) {
	if h == nil {
		return 0, ErrNilHash
	}
	if len(inputs) == 0 {
		return 0, ErrNoInputs
	}
	ones, total := 0, 0
	for _, data := range inputs {
		digest, err := h(data)
		if err != nil {
			return 0, err
		}
		n, err := onesBits(digest)
		if err != nil {
			return 0, err
		}
		ones += n
		total += len(digest) * 4
	}
	return float64(ones) / float64(total) * 100, nil
}

// Throughput returns the mean wall time of one hash invocation over iters
// runs.
func Throughput(h HashFunc, data []byte, iters int) (time.Duration, error) {
	if h == nil {
		return 0, ErrNilHash
	}
	if iters < 1 {
		iters = 1
	}
	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := h(data); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(iters), nil
}

// diffBits counts differing bits between two equal-length hex digests.
func diffBits(a, b string) (int, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, ErrBadDigest
	}
	n := 0
	for i := range a {
		x, err := strconv.ParseUint(a[i:i+1], 16, 8)
		if err != nil {
			return 0, ErrBadDigest
		}
		y, err := strconv.ParseUint(b[i:i+1], 16, 8)
		if err != nil {
			return 0, ErrBadDigest
		}
		n += bits.OnesCount8(uint8(x ^ y))
	}
	return n, nil
}

// onesBits counts set bits in a hex digest.
func onesBits(d string) (int, error) {
	if len(d) == 0 {
		return 0, ErrBadDigest
	}
	n := 0
	for i := range d {
		x, err := strconv.ParseUint(d[i:i+1], 16, 8)
		if err != nil {
			return 0, ErrBadDigest
		}
		n += bits.OnesCount8(uint8(x))
	}
	return n, nil
}
