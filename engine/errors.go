// Package engine: sentinel error set.

package engine

import "errors"

var (
	// ErrNonPositiveQubits is returned by NewState for qubits ≤ 0.
	ErrNonPositiveQubits = errors.New("engine: qubit count must be positive")

	// ErrOutOfMemory is returned by NewState when the estimated amplitude
	// storage (16·2^N bytes) exceeds the configured memory limit. The
	// estimate runs before any allocation, so no simulation work starts.
	ErrOutOfMemory = errors.New("engine: state vector exceeds memory limit")

	// ErrQubitOutOfRange is returned when an application request names a
	// qubit index outside 0..N−1.
	ErrQubitOutOfRange = errors.New("engine: qubit index out of range")

	// ErrArityMismatch is returned when the target count does not match
	// the gate arity.
	ErrArityMismatch = errors.New("engine: gate arity mismatch")

	// ErrDuplicateQubit is returned when a two-qubit application names
	// the same qubit twice.
	ErrDuplicateQubit = errors.New("engine: duplicate target qubit")

	// ErrNonUnitary is returned when the norm invariant is violated after
	// a gate beyond Tolerance. It indicates a malformed gate matrix (a
	// library bug, not a user error) and aborts the run; the engine never
	// renormalizes to hide it.
	ErrNonUnitary = errors.New("engine: non-unitary gate broke normalization")
)
