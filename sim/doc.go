// Package sim orchestrates a complete simulation: it folds a circuit's
// gate sequence into a fresh state vector, marginalizes the final
// state over the measured qubits, samples the requested shots, and
// tallies the outcomes.
//
// What:
//
//   - Run(circuit, shots, opts...) → result.Counts: one circuit, one
//     fresh |0...0⟩ state, sequential gate application in program
//     order, then sampling. Deterministic for the same circuit, shot
//     count and seed.
//   - RunAll(circuits, shots, opts...) → []Report: an independent run
//     per circuit, fanned out over a bounded worker group. Runs are
//     embarrassingly parallel — each owns its own state buffer and no
//     shared mutable state exists between them. Reports preserve input
//     order and carry a unique RunID.
//
// Determinism: WithSeed(s) seeds Run directly; RunAll derives the seed
// of run i as s+i, so a whole sweep is reproducible end to end.
// WithRand is accepted by Run only — a single RNG cannot be shared
// across concurrent runs, so RunAll rejects it with ErrRandInSweep.
//
// Complexity: O(G·2^N) gate work plus O(shots·log 2^M) sampling per
// run; RunAll adds only goroutine fan-out on top.
//
// Errors: ErrNilCircuit, ErrNonPositiveShots, ErrRandInSweep; engine,
// measure and gate errors pass through wrapped with the failing gate's
// position and name.
package sim
