// Package analysis defines the measurement types and sentinel errors for
// github.com/katalvlaran/tcahash.
package analysis

import (
	"errors"
	"time"
)

// Sentinel errors for analysis operations.
var (
	// ErrNilHash indicates a nil HashFunc.
	ErrNilHash = errors.New("analysis: hash function must be non-nil")
	// ErrEmptyData indicates an avalanche probe with no input byte to flip.
	ErrEmptyData = errors.New("analysis: input data must be non-empty")
	// ErrNoInputs indicates a sample-based measurement with an empty sample.
	ErrNoInputs = errors.New("analysis: at least one sample input is required")
	// ErrBadDigest indicates digests that are not equal-length hex strings.
	ErrBadDigest = errors.New("analysis: digests must be equal-length hexadecimal strings")
	// ErrBadDifficulty indicates a mining difficulty outside [0, 64].
	ErrBadDifficulty = errors.New("analysis: difficulty must be between 0 and 64 leading zeros")
)

// HashFunc is the measurement adapter: any function producing a hex digest
// for input bytes. Implementations must be deterministic and safe for
// concurrent use; the traffic-adaptive pipeline satisfies both.
type HashFunc func(data []byte) (string, error)

// MiningResult reports one proof-of-work sweep.
type MiningResult struct {
	// Found reports whether a qualifying digest appeared within the sweep.
	Found bool
	// Nonce is the qualifying nonce (zero when not found).
	Nonce uint64
	// Digest is the qualifying digest (empty when not found).
	Digest string
	// Attempts is the number of hash invocations spent.
	Attempts uint64
	// Elapsed is the wall time of the sweep.
	Elapsed time.Duration
}

// Variant names a hash function for comparison tables.
type Variant struct {
	Name string
	Hash HashFunc
}

// Result is one measured row of a comparison table.
type Result struct {
	Name          string
	AvgTime       time.Duration
	AvalanchePct  float64
	BitBalancePct float64
	Sample        string
}

// ReportConfig tunes the sample sizes of Measure and WriteReport.
type ReportConfig struct {
	// Iterations is the number of hashes timed per variant.
	Iterations int
	// Samples is the number of derived inputs per statistical measurement.
	Samples int
}

// DefaultReportConfig returns the sampling defaults: 50 timed iterations and
// 100 statistical samples per variant.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{Iterations: 50, Samples: 100}
}

// normalize fills unset config fields with the defaults.
func (c ReportConfig) normalize() ReportConfig {
	def := DefaultReportConfig()
	if c.Iterations < 1 {
		c.Iterations = def.Iterations
	}
	if c.Samples < 1 {
		c.Samples = def.Samples
	}
	return c
}
