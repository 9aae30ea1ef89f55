// Package circuit: the Circuit container and its append-only builder
// surface. Validation order per instruction: gate validity → arity →
// index range → duplicate targets.

package circuit

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qsim/gate"
)

// Instruction is one recorded gate application: an immutable pair of
// the gate value and its ordered target qubit indices.
type Instruction struct {
	g      gate.Gate
	qubits []int
}

// Gate returns the gate of this instruction.
func (in Instruction) Gate() gate.Gate { return in.g }

// Qubits returns a copy of the ordered target indices. For CNOT the
// order is (control, target).
func (in Instruction) Qubits() []int {
	qs := make([]int, len(in.qubits))
	copy(qs, in.qubits)

	return qs
}

// Circuit is an ordered, append-only sequence of gate instructions over
// a fixed qubit register. Executing a circuit never mutates it.
type Circuit struct {
	qubits   int
	measured []int // ascending, deduplicated, non-empty
	ops      []Instruction
}

// New creates an empty circuit over `qubits` qubits.
//
// Validation (in order):
//  1. qubits ≥ 1 (ErrNonPositiveQubits).
//  2. every WithMeasured index within 0..qubits−1 (ErrQubitOutOfRange).
//
// The measured set defaults to all qubits. Complexity: O(M log M) for
// M measured qubits (sort); O(qubits) for the default set.
func New(qubits int, opts ...Option) (*Circuit, error) {
	if qubits <= 0 {
		return nil, fmt.Errorf("New(%d): %w", qubits, ErrNonPositiveQubits)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	measured, err := normalizeMeasured(cfg.measured, qubits)
	if err != nil {
		return nil, err
	}

	return &Circuit{qubits: qubits, measured: measured}, nil
}

// normalizeMeasured range-checks, deduplicates and sorts the measured
// set; nil input selects every qubit.
func normalizeMeasured(measured []int, qubits int) ([]int, error) {
	if measured == nil {
		all := make([]int, qubits)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}

	seen := make(map[int]bool, len(measured))
	out := make([]int, 0, len(measured))
	for _, q := range measured {
		if q < 0 || q >= qubits {
			return nil, fmt.Errorf("measured qubit %d of %d: %w", q, qubits, ErrQubitOutOfRange)
		}
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	sort.Ints(out)

	return out, nil
}

// Append records one gate application at the end of the circuit.
// On any validation error nothing is recorded, so a circuit can never
// hold a half-valid instruction sequence.
//
// Complexity: O(arity) per call, amortized O(1) slice growth.
func (c *Circuit) Append(g gate.Gate, qubits ...int) error {
	arity := g.Arity()
	if arity == 0 {
		return fmt.Errorf("Append: unconstructed gate: %w", gate.ErrInvalidParameter)
	}
	if len(qubits) != arity {
		return fmt.Errorf("Append(%s): got %d target(s), want %d: %w", g, len(qubits), arity, ErrArityMismatch)
	}
	for _, q := range qubits {
		if q < 0 || q >= c.qubits {
			return fmt.Errorf("Append(%s): qubit %d of %d: %w", g, q, c.qubits, ErrQubitOutOfRange)
		}
	}
	if arity == 2 && qubits[0] == qubits[1] {
		return fmt.Errorf("Append(%s): control == target == %d: %w", g, qubits[0], ErrDuplicateQubit)
	}

	qs := make([]int, arity)
	copy(qs, qubits)
	c.ops = append(c.ops, Instruction{g: g, qubits: qs})

	return nil
}

// X appends a bit flip on qubit q.
func (c *Circuit) X(q int) error { return c.Append(gate.X(), q) }

// Y appends a Pauli-Y on qubit q.
func (c *Circuit) Y(q int) error { return c.Append(gate.Y(), q) }

// Z appends a phase flip on qubit q.
func (c *Circuit) Z(q int) error { return c.Append(gate.Z(), q) }

// H appends a Hadamard on qubit q.
func (c *Circuit) H(q int) error { return c.Append(gate.H(), q) }

// S appends the +i phase gate on qubit q.
func (c *Circuit) S(q int) error { return c.Append(gate.S(), q) }

// SDagger appends the −i phase gate on qubit q.
func (c *Circuit) SDagger(q int) error { return c.Append(gate.SDagger(), q) }

// T appends the e^{+iπ/4} phase gate on qubit q.
func (c *Circuit) T(q int) error { return c.Append(gate.T(), q) }

// TDagger appends the e^{−iπ/4} phase gate on qubit q.
func (c *Circuit) TDagger(q int) error { return c.Append(gate.TDagger(), q) }

// U appends the general rotation U(θ,φ,λ) on qubit q.
// Parameter validation happens in gate.U, so a NaN angle is rejected
// here, at build time.
func (c *Circuit) U(q int, theta, phi, lambda float64) error {
	g, err := gate.U(theta, phi, lambda)
	if err != nil {
		return err
	}

	return c.Append(g, q)
}

// CNOT appends a controlled-NOT with the given control and target.
func (c *Circuit) CNOT(control, target int) error {
	return c.Append(gate.CNOT(), control, target)
}

// Qubits returns the declared register size N.
func (c *Circuit) Qubits() int { return c.qubits }

// Len returns the number of recorded instructions.
func (c *Circuit) Len() int { return len(c.ops) }

// Measured returns a copy of the measured qubit set, ascending.
func (c *Circuit) Measured() []int {
	out := make([]int, len(c.measured))
	copy(out, c.measured)

	return out
}

// Instructions returns a copy of the recorded instruction sequence in
// program order. Complexity: O(Len).
func (c *Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.ops))
	copy(out, c.ops)

	return out
}
