package ledgerhash

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

// Congestion thresholds mapping network load onto signal phases.
const (
	lightCongestion = 0.3
	heavyCongestion = 0.7
)

// BlockHash hashes block contents for a traffic-adaptive chain: higher
// network congestion selects heavier evolution parameters, so mining
// difficulty follows real-time load. Transactions are concatenated in their
// given order and never reordered (see the package documentation for the
// exact byte layout).
// Complexity: O(total transaction bytes) plus the pipeline cost.
func BlockHash(
	index uint64,
	previousHash string,
	timestamp int64,
	transactions []string,
	nonce uint64,
	networkCongestion float64,
) (string, error) {
	if previousHash == "" {
		return "", ErrEmptyPreviousHash
	}
	if len(transactions) == 0 {
		return "", ErrNoTransactions
	}
	for _, tx := range transactions {
		if tx == "" {
			return "", ErrEmptyTransaction
		}
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(index, 10))
	sb.WriteByte('|')
	sb.WriteString(previousHash)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(timestamp, 10))
	for _, tx := range transactions {
		sb.WriteByte('|')
		sb.WriteString(tx)
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(nonce, 10))

	density := policy.ClampDensity(networkCongestion)
	signal := policy.Green
	switch {
	case density >= heavyCongestion:
		signal = policy.Red
	case density >= lightCongestion:
		signal = policy.Yellow
	}

	ctx := policy.Context{
		Density: density,
		Signal:  signal,
		Urgency: int(density * 10),
	}

	return cahash.Sum([]byte(sb.String()), ctx)
}
