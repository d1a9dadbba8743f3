// Package tcahash is a traffic-adaptive cellular-automaton hash engine:
// a 256-bit hash whose internal work — automaton rule, neighborhood radius,
// evolution step count — is selected from live traffic signals instead of
// being fixed.
//
// 🚦 What is tcahash?
//
//	A small, self-contained library that brings together:
//		• policy/     — deterministic mapping of traffic context → evolution parameters
//		• automaton/  — one-dimensional binary CA engine with variable neighborhood radius
//		• cahash/     — seeding, evolution and digest extraction: the full hash pipeline
//		• ledgerhash/ — canonical hashing of intersection and block records
//		• analysis/   — avalanche, bit-balance, throughput and mining instrumentation
//
// ✨ Why tcahash?
//
//   - Deterministic – identical inputs and context always reproduce the digest
//   - Adaptive – heavier traffic buys more evolution steps and wider neighborhoods
//   - Pure Go – no cgo, no hidden deps, every invocation owns its own state
//   - Honest – no cryptographic-security claim; statistical properties are pinned by tests
//
// Quick taste:
//
//	ctx := policy.Context{Density: 0.2, Signal: policy.Green}
//	digest, err := cahash.Sum([]byte("block_data"), ctx)
//
// Dive into DESIGN.md for the parameter-selection contract and the
// radius-generalization construction.
//
//	go get github.com/katalvlaran/tcahash
package tcahash
