package ledgerhash

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

// fullIntersectionVehicles is the vehicle total treated as saturation when
// deriving density from an intersection record.
const fullIntersectionVehicles = 40.0

// IntersectionHash hashes one intersection snapshot. The record is
// canonicalized with sorted direction keys (see the package documentation for
// the exact byte layout), a traffic context is derived from the same fields,
// and the canonical bytes run through the adaptive pipeline.
// Complexity: O(k log k) for k directions plus the pipeline cost.
func IntersectionHash(
	id string,
	timestamp int64,
	signals map[string]policy.SignalState,
	vehicleCounts map[string]int,
	weatherFactor float64,
) (string, error) {
	if id == "" {
		return "", ErrEmptyIntersectionID
	}
	if len(signals) == 0 {
		return "", ErrNoSignals
	}
	if len(vehicleCounts) == 0 {
		return "", ErrNoVehicleCounts
	}
	worst := policy.Green
	for _, sig := range signals {
		if !sig.Valid() {
			return "", policy.ErrUnknownSignal
		}
		// Worst case wins; the enum ordinals are ordered by severity.
		if sig > worst {
			worst = sig
		}
	}

	var sb strings.Builder
	sb.WriteString(id)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(timestamp, 10))
	sb.WriteByte('|')
	for i, dir := range sortedKeys(signals) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(dir)
		sb.WriteByte('=')
		sb.WriteString(signals[dir].String())
	}
	sb.WriteByte('|')
	total := 0
	for i, dir := range sortedKeys(vehicleCounts) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(dir)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(vehicleCounts[dir]))
		if vehicleCounts[dir] > 0 {
			total += vehicleCounts[dir]
		}
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatFloat(weatherFactor, 'g', -1, 64))

	ctx := policy.Context{
		Density: policy.ClampDensity(float64(total) / fullIntersectionVehicles * policy.ClampDensity(weatherFactor)),
		Signal:  worst,
		Urgency: policy.ClampUrgency(total / 4),
	}

	return cahash.Sum([]byte(sb.String()), ctx)
}

// sortedKeys returns the map's keys in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
