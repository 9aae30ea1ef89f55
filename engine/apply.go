// Package engine: in-place gate application.
// The contract is apply(state, gate_matrix, target_indices): contract
// one (or two) tensor axes of the flat amplitude array via paired-index
// arithmetic, then verify the norm invariant.

package engine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/gate"
)

// Apply folds one gate into the state. The gate's matrix is resolved
// from its Kind and delegated to ApplyMatrix/ApplyMatrix4; target
// order follows the gate convention (CNOT: control first).
//
// Complexity: O(2^N). Errors: ErrArityMismatch, ErrQubitOutOfRange,
// ErrDuplicateQubit, ErrNonUnitary; gate resolution errors pass through.
func (s *State) Apply(g gate.Gate, qubits ...int) error {
	switch g.Arity() {
	case 1:
		if len(qubits) != 1 {
			return fmt.Errorf("Apply(%s): got %d target(s), want 1: %w", g, len(qubits), ErrArityMismatch)
		}
		m, err := g.Matrix()
		if err != nil {
			return fmt.Errorf("Apply(%s): %w", g, err)
		}

		return s.ApplyMatrix(m, qubits[0])
	case 2:
		if len(qubits) != 2 {
			return fmt.Errorf("Apply(%s): got %d target(s), want 2: %w", g, len(qubits), ErrArityMismatch)
		}
		m, err := g.Matrix4()
		if err != nil {
			return fmt.Errorf("Apply(%s): %w", g, err)
		}

		return s.ApplyMatrix4(m, qubits[0], qubits[1])
	default:
		return fmt.Errorf("Apply: unconstructed gate: %w", gate.ErrInvalidParameter)
	}
}

// ApplyMatrix applies an arbitrary 2×2 matrix to qubit k, in place.
//
// For every pair of basis indices (i, i|2^k) differing only in bit k,
// the pair of amplitudes is multiplied by m while all other amplitudes
// keep their magnitude and relative phase untouched. Scratch is the
// two local variables a0/a1 — no second vector is ever allocated.
//
// After the sweep the 2-norm is checked against Tolerance; a violation
// reports ErrNonUnitary and the run must be abandoned.
func (s *State) ApplyMatrix(m gate.Matrix2, k int) error {
	if k < 0 || k >= s.qubits {
		return fmt.Errorf("ApplyMatrix: qubit %d of %d: %w", k, s.qubits, ErrQubitOutOfRange)
	}

	bit := 1 << k
	for i := 0; i < len(s.amps); i++ {
		if i&bit != 0 {
			continue // visit each pair once, from its low member
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[j] = m[1][0]*a0 + m[1][1]*a1
	}

	return s.checkNorm(fmt.Sprintf("qubit %d", k))
}

// ApplyMatrix4 applies an arbitrary 4×4 matrix to the qubit pair
// (qa, qb), in place. qa, listed first, occupies the low bit of the
// local basis index (local = bit(qa) + 2·bit(qb)), matching the
// gate.Matrix4 convention — for CNOT, qa is the control.
//
// The sweep visits every index with both target bits clear and
// transforms the 4-amplitude block it anchors. Complexity: O(2^N).
func (s *State) ApplyMatrix4(m gate.Matrix4, qa, qb int) error {
	if qa < 0 || qa >= s.qubits {
		return fmt.Errorf("ApplyMatrix4: qubit %d of %d: %w", qa, s.qubits, ErrQubitOutOfRange)
	}
	if qb < 0 || qb >= s.qubits {
		return fmt.Errorf("ApplyMatrix4: qubit %d of %d: %w", qb, s.qubits, ErrQubitOutOfRange)
	}
	if qa == qb {
		return fmt.Errorf("ApplyMatrix4: qubit %d listed twice: %w", qa, ErrDuplicateQubit)
	}

	aBit, bBit := 1<<qa, 1<<qb
	mask := aBit | bBit
	for i := 0; i < len(s.amps); i++ {
		if i&mask != 0 {
			continue // anchor: both target bits clear
		}
		i0 := i               // qa=0, qb=0 → local 0
		i1 := i | aBit        // qa=1, qb=0 → local 1
		i2 := i | bBit        // qa=0, qb=1 → local 2
		i3 := i | aBit | bBit // qa=1, qb=1 → local 3
		v0, v1, v2, v3 := s.amps[i0], s.amps[i1], s.amps[i2], s.amps[i3]
		s.amps[i0] = m[0][0]*v0 + m[0][1]*v1 + m[0][2]*v2 + m[0][3]*v3
		s.amps[i1] = m[1][0]*v0 + m[1][1]*v1 + m[1][2]*v2 + m[1][3]*v3
		s.amps[i2] = m[2][0]*v0 + m[2][1]*v1 + m[2][2]*v2 + m[2][3]*v3
		s.amps[i3] = m[3][0]*v0 + m[3][1]*v1 + m[3][2]*v2 + m[3][3]*v3
	}

	return s.checkNorm(fmt.Sprintf("qubits (%d,%d)", qa, qb))
}

// checkNorm enforces the normalization invariant after a gate.
// Unitary matrices preserve the 2-norm by construction, so a drift
// beyond Tolerance means the matrix was not unitary.
func (s *State) checkNorm(where string) error {
	if n := s.Norm(); math.Abs(n-1) > Tolerance {
		return fmt.Errorf("after %s: norm %.12f: %w", where, n, ErrNonUnitary)
	}

	return nil
}
