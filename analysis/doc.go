// Package analysis instruments hash functions: avalanche effect, bit
// balance, throughput and proof-of-work mining simulation.
//
// What:
//
//   - HashFunc adapts any digest-producing function for measurement.
//   - Avalanche / AvalancheMean measure the percentage of digest bits changed
//     by a single input-bit flip (a good mixer sits near 50%).
//   - BitBalance measures the fraction of set bits across a digest sample
//     (a good mixer sits near 50%).
//   - Throughput measures mean wall time per hash.
//   - Mine / MineParallel sweep a nonce space for a digest with a given
//     number of leading zero hex digits; the parallel variant fans workers
//     out with errgroup, which is safe because every hash invocation owns
//     its own state.
//   - Measure / WriteReport compare named hash variants in one table, the
//     way a benchmarking harness would.
//
// Why:
//
//   - The adaptive pipeline's statistical contract (45–55% avalanche,
//     48–52% bit balance) needs a measurement kit both for tests and for
//     operators comparing parameter bands.
//   - Mining simulation shows congestion-adaptive difficulty end to end.
//
// Errors:
//
//   - ErrNilHash: a nil HashFunc.
//   - ErrEmptyData: avalanche needs at least one input byte to flip.
//   - ErrNoInputs: a sample-based measurement received an empty sample.
//   - ErrBadDigest: the measured function returned digests that are not
//     equal-length hexadecimal strings.
//   - ErrBadDifficulty: a mining difficulty outside [0, 64].
//
// Complexity: every measurement is O(sample size × cost of one hash).
package analysis
