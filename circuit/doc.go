// Package circuit models a quantum circuit: a declared qubit count, an
// append-only ordered sequence of gate instructions, and the set of
// qubits to be measured.
//
// What:
//
//   - Circuit: built once via New, extended with Append (or the thin
//     per-gate helpers X/H/.../CNOT/U), then executed any number of
//     times. Execution never mutates a circuit, so the same value can
//     be run repeatedly with identical meaning.
//   - Instruction: one immutable (gate, target qubits) record.
//
// Why:
//   - Every user error — bad rotation parameter, qubit index out of
//     range, wrong target count — is rejected while the circuit is
//     being built. No partial circuit ever reaches the engine, and no
//     instruction is recorded when Append fails.
//
// Conventions:
//
//   - Qubits are indexed 0..N−1; index 0 occupies the least-significant
//     bit of the combined basis-state index.
//   - Two-qubit gates list targets in (control, target) order.
//   - The measured set defaults to all qubits and is normalized to
//     ascending order with duplicates removed.
//
// Complexity: Append is O(arity); accessors that return slices copy in
// O(len) to preserve immutability.
//
// Errors:
//
//   - ErrNonPositiveQubits — New called with qubits ≤ 0.
//   - ErrQubitOutOfRange   — a gate or measurement references an index
//     outside 0..N−1.
//   - ErrArityMismatch     — target count does not match the gate arity.
//   - ErrDuplicateQubit    — a two-qubit gate lists the same qubit twice.
//   - gate.ErrInvalidParameter — zero-value Gate appended, or bad U
//     parameters passed to the U helper.
package circuit
