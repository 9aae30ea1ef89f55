// Package measure: sentinel error set.

package measure

import "errors"

var (
	// ErrNilState is returned when Distribution receives a nil state.
	ErrNilState = errors.New("measure: state is nil")

	// ErrNoMeasuredQubits is returned when the measured set is empty.
	ErrNoMeasuredQubits = errors.New("measure: no measured qubits")

	// ErrQubitOutOfRange is returned when a measured qubit index is
	// outside the state's register.
	ErrQubitOutOfRange = errors.New("measure: qubit index out of range")

	// ErrDuplicateQubit is returned when the measured set repeats an index.
	ErrDuplicateQubit = errors.New("measure: duplicate measured qubit")

	// ErrNonPositiveShots is returned by Sample for shots ≤ 0.
	ErrNonPositiveShots = errors.New("measure: shot count must be positive")

	// ErrBadDistribution is returned by Sample when the distribution has
	// negative entries or its total deviates from 1 beyond tolerance.
	ErrBadDistribution = errors.New("measure: malformed probability distribution")
)
