// Package circuit: sentinel error set.
// Callers branch with errors.Is; implementations attach the failing
// gate and qubit via %w wrapping.

package circuit

import "errors"

var (
	// ErrNonPositiveQubits is returned by New when the declared qubit
	// count is zero or negative.
	ErrNonPositiveQubits = errors.New("circuit: qubit count must be positive")

	// ErrQubitOutOfRange is returned when a gate target or measured qubit
	// index is negative or ≥ the declared qubit count.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrArityMismatch is returned when the number of target qubits does
	// not match the gate's arity.
	ErrArityMismatch = errors.New("circuit: gate arity mismatch")

	// ErrDuplicateQubit is returned when a two-qubit gate names the same
	// qubit as both control and target.
	ErrDuplicateQubit = errors.New("circuit: duplicate target qubit")
)
