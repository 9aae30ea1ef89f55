// Package gate defines the unitary gate library of the simulator:
// fixed single-qubit gates, the general single-qubit rotation U(θ,φ,λ),
// and the two-qubit controlled-NOT.
//
// What:
//
//   - Gate: an immutable tagged value (Kind + optional θ,φ,λ parameters).
//     Every supported gate is one Kind, so the whole library can be
//     exhaustively matched and exhaustively tested.
//   - Matrix2 / Matrix4: dense 2×2 / 4×4 complex unitaries produced by
//     Gate.Matrix and Gate.Matrix4. Matrices are pure data; producing
//     one has no side effects and touches no mutable state.
//   - Constructors: X, Y, Z, H, S, SDagger, T, TDagger, CNOT (fixed)
//     and U(θ,φ,λ) (parameterized, validated).
//
// Why:
//   - The engine consumes matrices, not names; keeping gates as pure
//     matrix producers separates "what a gate is" from "how it is
//     applied to 2^N amplitudes".
//   - Every fixed gate is a U(θ,φ,λ) special case; the canonical
//     triples are exported for the equivalence tests.
//
// Conventions:
//
//   - Basis order per matrix is |0⟩,|1⟩ for Matrix2 and, for Matrix4,
//     the first-listed target qubit occupies the low bit of the local
//     index (so CNOT(control,target) uses local index c + 2t).
//   - Y maps |0⟩→i|1⟩ and |1⟩→−i|0⟩, i.e. [[0,−i],[i,0]].
//
// Complexity: all constructors and matrix producers are O(1).
//
// Errors:
//
//   - ErrInvalidParameter — NaN/±Inf rotation angle, or a zero-value
//     Gate used where a constructed one is required.
//   - ErrMatrixArity — Matrix called on a two-qubit gate or Matrix4 on
//     a single-qubit gate.
package gate
