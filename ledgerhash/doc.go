// Package ledgerhash hashes structured domain records — intersection
// snapshots and block contents — through the traffic-adaptive pipeline.
//
// What:
//
//   - IntersectionHash canonicalizes an intersection state (id, timestamp,
//     per-direction signal states and vehicle counts, weather factor) and
//     hashes it under a context derived from those same fields.
//   - BlockHash canonicalizes block contents (index, previous hash,
//     timestamp, ordered transactions, nonce) and hashes them under a context
//     derived from network congestion, giving congestion-adaptive mining
//     difficulty.
//
// Canonical encodings (fixed; two callers producing the same logical record
// always produce the same byte string):
//
//	intersection: id|timestamp|k1=SIGNAL,k2=SIGNAL|k1=count,k2=count|weather
//	block:        index|previousHash|timestamp|tx1|tx2|…|txN|nonce
//
// Direction keys are sorted lexicographically; integers are rendered in
// decimal; floats use strconv.FormatFloat(f, 'g', -1, 64); transactions keep
// their given order and are never reordered. Fields are joined with '|' and
// map entries with ',' — callers embedding those characters inside ids or
// transactions are responsible for their own escaping.
//
// Context derivation:
//
//   - intersection: density = clamp(totalVehicles/40)·clamp(weather); the
//     overall signal is the worst case across directions
//     (EMERGENCY > RED > YELLOW > GREEN); urgency = min(totalVehicles/4, 10).
//   - block: density = clamp(congestion); signal by thresholds — GREEN below
//     0.3, YELLOW below 0.7, RED otherwise; urgency = ⌊clamp(congestion)·10⌋.
//
// Errors:
//
//   - ErrEmptyIntersectionID, ErrNoSignals, ErrNoVehicleCounts: a required
//     intersection field is missing.
//   - ErrEmptyPreviousHash, ErrNoTransactions, ErrEmptyTransaction: a
//     required block field is missing or empty.
//   - policy.ErrUnknownSignal: a direction carries an out-of-enum state.
//
// A failed record never yields a partial digest, and retries are pointless:
// the pipeline is deterministic, so the same record fails identically.
package ledgerhash
