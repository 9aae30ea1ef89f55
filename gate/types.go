// Package gate: domain types and constructors.
// Gates are immutable tagged values; parameters are validated at
// construction so no malformed gate ever reaches a circuit.

package gate

import (
	"fmt"
	"math"
)

// Kind enumerates every supported gate. The zero value is KindInvalid
// so an unconstructed Gate is detectable and rejected.
type Kind uint8

const (
	// KindInvalid marks the zero-value Gate; never accepted by circuits.
	KindInvalid Kind = iota
	// KindX is the bit flip (Pauli-X).
	KindX
	// KindY is the Pauli-Y gate: |0⟩→i|1⟩, |1⟩→−i|0⟩.
	KindY
	// KindZ multiplies the |1⟩ component by −1 (Pauli-Z).
	KindZ
	// KindH is the Hadamard gate: (a,b) → ((a+b)/√2, (a−b)/√2).
	KindH
	// KindS multiplies the |1⟩ component by +i.
	KindS
	// KindSDagger multiplies the |1⟩ component by −i.
	KindSDagger
	// KindT multiplies the |1⟩ component by e^{+iπ/4}.
	KindT
	// KindTDagger multiplies the |1⟩ component by e^{−iπ/4}.
	KindTDagger
	// KindU is the general single-qubit rotation U(θ,φ,λ).
	KindU
	// KindCNOT is the two-qubit controlled-NOT, targets in
	// (control, target) order.
	KindCNOT
)

// String returns the canonical short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindX:
		return "X"
	case KindY:
		return "Y"
	case KindZ:
		return "Z"
	case KindH:
		return "H"
	case KindS:
		return "S"
	case KindSDagger:
		return "S†"
	case KindT:
		return "T"
	case KindTDagger:
		return "T†"
	case KindU:
		return "U"
	case KindCNOT:
		return "CNOT"
	default:
		return "invalid"
	}
}

// Gate is one immutable gate selection: a Kind plus the rotation
// parameters, which are meaningful only for KindU. The zero value is
// invalid; obtain gates through the constructors below.
type Gate struct {
	kind  Kind
	theta float64 // θ — rotation angle, KindU only
	phi   float64 // φ — phase of the |1⟩ row, KindU only
	lam   float64 // λ — phase of the |1⟩ column, KindU only
}

// Kind reports which gate this is.
func (g Gate) Kind() Kind { return g.kind }

// Arity returns the number of target qubits: 1 for single-qubit gates,
// 2 for CNOT, 0 for the invalid zero value.
func (g Gate) Arity() int {
	switch g.kind {
	case KindInvalid:
		return 0
	case KindCNOT:
		return 2
	default:
		return 1
	}
}

// Params returns (θ, φ, λ). All zeros for non-U gates.
func (g Gate) Params() (theta, phi, lambda float64) {
	return g.theta, g.phi, g.lam
}

// String renders the gate for error messages and debugging.
func (g Gate) String() string {
	if g.kind == KindU {
		return fmt.Sprintf("U(%g,%g,%g)", g.theta, g.phi, g.lam)
	}

	return g.kind.String()
}

// X returns the bit-flip gate.
func X() Gate { return Gate{kind: KindX} }

// Y returns the Pauli-Y gate.
func Y() Gate { return Gate{kind: KindY} }

// Z returns the phase-flip gate.
func Z() Gate { return Gate{kind: KindZ} }

// H returns the Hadamard gate.
func H() Gate { return Gate{kind: KindH} }

// S returns the +i phase gate.
func S() Gate { return Gate{kind: KindS} }

// SDagger returns the −i phase gate (adjoint of S).
func SDagger() Gate { return Gate{kind: KindSDagger} }

// T returns the e^{+iπ/4} phase gate.
func T() Gate { return Gate{kind: KindT} }

// TDagger returns the e^{−iπ/4} phase gate (adjoint of T).
func TDagger() Gate { return Gate{kind: KindTDagger} }

// CNOT returns the two-qubit controlled-NOT. The first target index
// supplied to a circuit or engine is the control, the second the target.
func CNOT() Gate { return Gate{kind: KindCNOT} }

// U returns the general single-qubit rotation U(θ,φ,λ):
//
//	[ cos(θ/2)            −e^{iλ}      sin(θ/2) ]
//	[ e^{iφ}  sin(θ/2)     e^{i(λ+φ)}  cos(θ/2) ]
//
// NaN or ±Inf parameters are rejected with ErrInvalidParameter; the
// circuit is the last line of defense, so the check happens here, at
// build time, never during simulation.
func U(theta, phi, lambda float64) (Gate, error) {
	for _, p := range [3]float64{theta, phi, lambda} {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Gate{}, fmt.Errorf("U(%g,%g,%g): %w", theta, phi, lambda, ErrInvalidParameter)
		}
	}

	return Gate{kind: KindU, theta: theta, phi: phi, lam: lambda}, nil
}
