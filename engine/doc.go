// Package engine owns the state vector of a single simulation run: the
// array of 2^N complex amplitudes, mutated in place by unitary gate
// application.
//
// What:
//
//   - State: amplitude vector over the combined basis states of an
//     N-qubit register, initialized to |0...0⟩ (amplitude 1 at index 0).
//   - Apply: folds one gate.Gate into the state.
//   - ApplyMatrix / ApplyMatrix4: the raw contract — apply an explicit
//     2×2 (resp. 4×4) unitary to the designated qubit(s).
//
// How:
//
//	A single-qubit gate on qubit k contracts only the axis k of the
//	rank-N amplitude tensor: for every pair of basis indices differing
//	solely in bit k, the 2×2 matrix is applied to that amplitude pair
//	and every other bit of context stays fixed. This is expressed as
//	flat-array index arithmetic (pair index = i XOR 2^k), not as a
//	reshaped tensor. Two-qubit gates generalize to the four indices
//	spanned by both target bits, with the first-listed qubit on the
//	low local bit.
//
// Invariants:
//
//   - Σ|amplitude|² = 1 within Tolerance after every operation. The
//     engine verifies this after each gate; a violation means a
//     malformed matrix reached the engine and the run aborts with
//     ErrNonUnitary — the state is never silently renormalized.
//   - At most one full amplitude vector is live per State; gate
//     application uses a fixed-size scratch only.
//
// Complexity: O(2^N) per gate application; O(G·2^N) for a G-gate
// circuit. Memory: 16·2^N bytes, estimated up front against a
// configurable limit before any allocation happens.
//
// Concurrency: a State is owned by exactly one run and is not safe for
// concurrent mutation; independent runs own independent States.
//
// Errors:
//
//   - ErrNonPositiveQubits — NewState with qubits ≤ 0.
//   - ErrOutOfMemory       — 16·2^N exceeds the configured memory limit.
//   - ErrQubitOutOfRange, ErrArityMismatch, ErrDuplicateQubit —
//     malformed application requests.
//   - ErrNonUnitary        — norm invariant broken after a gate (fatal).
package engine
