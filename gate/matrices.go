// Package gate: dense matrix producers.
// Fixed gates use exact canonical entries (0, ±1, 1/√2, e^{±iπ/4});
// the same gates are reproducible through the U(θ,φ,λ) formula with
// the triples published by UTriple, which the tests verify.

package gate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix2 is a dense 2×2 complex unitary, row-major, basis |0⟩,|1⟩.
type Matrix2 [2][2]complex128

// Matrix4 is a dense 4×4 complex unitary, row-major. The local basis
// index of an amplitude pair (qA, qB), with qA listed first, is
// bit(qA) + 2·bit(qB) — the first-listed qubit sits on the low bit,
// consistent with the register convention (qubit 0 = LSB).
type Matrix4 [4][4]complex128

// invSqrt2 is the Hadamard normalization 1/√2.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// Matrix returns the 2×2 unitary of a single-qubit gate.
// Returns ErrMatrixArity for CNOT and ErrInvalidParameter for the
// zero-value Gate. Complexity: O(1), no allocations beyond the value.
func (g Gate) Matrix() (Matrix2, error) {
	switch g.kind {
	case KindX:
		return Matrix2{{0, 1}, {1, 0}}, nil
	case KindY:
		return Matrix2{{0, -1i}, {1i, 0}}, nil
	case KindZ:
		return Matrix2{{1, 0}, {0, -1}}, nil
	case KindH:
		return Matrix2{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}, nil
	case KindS:
		return Matrix2{{1, 0}, {0, 1i}}, nil
	case KindSDagger:
		return Matrix2{{1, 0}, {0, -1i}}, nil
	case KindT:
		return Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}, nil
	case KindTDagger:
		return Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, -math.Pi/4))}}, nil
	case KindU:
		return uMatrix(g.theta, g.phi, g.lam), nil
	case KindCNOT:
		return Matrix2{}, fmt.Errorf("%s is two-qubit: %w", g.kind, ErrMatrixArity)
	default:
		return Matrix2{}, ErrInvalidParameter
	}
}

// Matrix4 returns the 4×4 unitary of a two-qubit gate.
// In the local basis c + 2t the controlled-NOT is the identity on the
// control=0 block and swaps the control=1 block (local indices 1↔3).
func (g Gate) Matrix4() (Matrix4, error) {
	switch g.kind {
	case KindCNOT:
		return Matrix4{
			{1, 0, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
		}, nil
	case KindInvalid:
		return Matrix4{}, ErrInvalidParameter
	default:
		return Matrix4{}, fmt.Errorf("%s is single-qubit: %w", g.kind, ErrMatrixArity)
	}
}

// uMatrix evaluates the general rotation formula. Pure; O(1).
func uMatrix(theta, phi, lambda float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	eL := cmplx.Exp(complex(0, lambda))
	eP := cmplx.Exp(complex(0, phi))

	return Matrix2{
		{c, -eL * s},
		{eP * s, eL * eP * c},
	}
}

// UTriple returns the canonical (θ, φ, λ) realizing a fixed
// single-qubit gate through U, and ok=false for KindU, KindCNOT and
// KindInvalid which have no fixed triple. The triples are part of the
// public contract: applying U with them reproduces the fixed gate to
// floating-point precision.
func UTriple(k Kind) (theta, phi, lambda float64, ok bool) {
	switch k {
	case KindX:
		return math.Pi, 0, math.Pi, true
	case KindY:
		return math.Pi, math.Pi / 2, math.Pi / 2, true
	case KindZ:
		return 0, 0, math.Pi, true
	case KindH:
		return math.Pi / 2, 0, math.Pi, true
	case KindS:
		return 0, 0, math.Pi / 2, true
	case KindSDagger:
		return 0, 0, -math.Pi / 2, true
	case KindT:
		return 0, 0, math.Pi / 4, true
	case KindTDagger:
		return 0, 0, -math.Pi / 4, true
	default:
		return 0, 0, 0, false
	}
}
