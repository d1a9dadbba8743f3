package cahash

import (
	"github.com/katalvlaran/tcahash/automaton"
	"github.com/katalvlaran/tcahash/policy"
)

// Sum computes the traffic-adaptive hash of data under the given context:
// Seed → policy.Select → automaton.Evolve → Extract.
// The result is always DigestLen lowercase hexadecimal characters.
// Fails only with policy.ErrUnknownSignal for an out-of-enum signal state;
// out-of-range density and urgency clamp per the policy contract.
// Complexity: O(steps × StateBits × radius), steps ≤ policy.MaxSteps.
func Sum(data []byte, ctx policy.Context) (string, error) {
	digest, _, err := SumWithParams(data, ctx)
	return digest, err
}

// SumWithParams is Sum plus the evolution parameters the policy selected for
// this invocation, for callers (and tests) that need the step-count contract
// to be observable.
func SumWithParams(data []byte, ctx policy.Context) (string, policy.Params, error) {
	params, err := policy.Select(ctx)
	if err != nil {
		return "", policy.Params{}, err
	}

	state := Seed(data, ctx)
	evolved, err := automaton.Evolve(state, params.Rule, params.Radius, params.Steps)
	if err != nil {
		return "", policy.Params{}, err
	}

	digest, err := Extract(evolved)
	if err != nil {
		return "", policy.Params{}, err
	}

	return digest, params, nil
}
