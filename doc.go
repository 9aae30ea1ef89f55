// Package qsim is an exact, noiseless state-vector simulator for
// quantum circuits — build a circuit gate by gate, run it for a number
// of shots, and get back a counts histogram over classical bitstrings.
//
// 🚀 What is qsim?
//
//	A small, deterministic simulation core that brings together:
//		• Gate library: X, Y, Z, H, S/S†, T/T†, the general rotation U(θ,φ,λ), CNOT
//		• Circuit model: append-only gate sequences, fully validated at build time
//		• State-vector engine: 2^N complex amplitudes folded in place, O(2^N) per gate
//		• Born-rule sampler: marginal distributions + seeded finite-shot draws
//		• Result aggregator: sparse counts, observed probabilities, error bars
//
// ✨ Why choose qsim?
//
//   - Reproducible – every stochastic step takes an explicit seed or RNG
//   - Fail-fast – bad parameters, bad indices and impossible register
//     sizes are rejected before any simulation work starts
//   - Pure Go – flat-array index arithmetic, no cgo, no tensor types
//   - Honest numerics – the norm invariant is checked after every gate,
//     never silently repaired
//
// Everything is organized under six subpackages:
//
//	gate/    — unitary matrices as pure data (tagged gate kinds)
//	circuit/ — the circuit container and its builder surface
//	engine/  — the amplitude vector and in-place gate application
//	measure/ — Born-rule marginalization and sampling
//	result/  — counts, probabilities, sampling standard error
//	sim/     — Run (one circuit) and RunAll (parallel sweeps)
//
// Quick sketch:
//
//	c, _ := circuit.New(2)
//	_ = c.H(0)
//	_ = c.CNOT(0, 1)
//	counts, _ := sim.Run(c, 1024, sim.WithSeed(42))
//	// counts ≈ {"00": ~512, "11": ~512}
//
// Bit convention: qubit 0 occupies the least-significant bit of every
// basis index and bitstring; rendered keys are MSB-first, so the state
// |q1=1,q0=1⟩ reads "11".
//
//	go get github.com/katalvlaran/qsim
package qsim
