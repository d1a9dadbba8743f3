package policy

import "math"

// ruleRadiusTable is the immutable signal→(rule, radius) mapping, indexed by
// SignalState ordinal. Initialized once; never mutated at runtime.
var ruleRadiusTable = [numSignalStates]struct {
	rule   uint8
	radius int
}{
	Green:     {rule: 30, radius: 1},
	Yellow:    {rule: 110, radius: 2},
	Red:       {rule: 110, radius: 3},
	Emergency: {rule: 184, radius: 5},
}

// stepBoost is the immutable per-signal additive step contribution. It keeps
// step counts strictly ordered GREEN < YELLOW < RED < EMERGENCY for matched
// density and urgency.
var stepBoost = [numSignalStates]int{
	Green:     0,
	Yellow:    16,
	Red:       32,
	Emergency: 64,
}

// Select derives evolution parameters from a traffic context.
// It is a pure function: no side effects, and identical contexts always
// yield identical Params. Density and urgency outside their nominal ranges
// are clamped, never rejected. The only failure is ErrUnknownSignal for a
// SignalState outside the enumeration.
// Complexity: O(1).
func Select(ctx Context) (Params, error) {
	if !ctx.Signal.Valid() {
		return Params{}, ErrUnknownSignal
	}
	entry := ruleRadiusTable[ctx.Signal]

	return Params{
		Rule:   entry.rule,
		Radius: entry.radius,
		Steps:  steps(ctx),
	}, nil
}

// steps computes the evolution step count:
//
//	64 + ⌊density·64⌋ + urgency·10 + boost(signal), clamped to [64, 228].
//
// The density and urgency terms follow the documented additive contract;
// the signal boost keeps the bands ordered across phases.
func steps(ctx Context) int {
	d := ClampDensity(ctx.Density)
	u := ClampUrgency(ctx.Urgency)

	total := BaseSteps + int(math.Floor(d*64)) + u*10 + stepBoost[ctx.Signal]
	if total < BaseSteps {
		total = BaseSteps
	}
	if total > MaxSteps {
		total = MaxSteps
	}

	return total
}

// ClampDensity clamps a density value to the nominal [0,1] range.
// NaN clamps to 0 so that a corrupted reading degrades to the lightest work
// rather than poisoning downstream arithmetic.
func ClampDensity(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// ClampUrgency clamps an urgency level to the nominal [0, MaxUrgency] range.
func ClampUrgency(u int) int {
	if u < 0 {
		return 0
	}
	if u > MaxUrgency {
		return MaxUrgency
	}
	return u
}
