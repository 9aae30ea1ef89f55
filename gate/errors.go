// Package gate: sentinel error set.
// Only package-level sentinels are exposed; callers branch with
// errors.Is. Context is attached with %w at the call site, never baked
// into the sentinel itself.

package gate

import "errors"

var (
	// ErrInvalidParameter is returned when a rotation parameter is NaN or
	// ±Inf, or when a zero-value Gate (Kind == KindInvalid) is consumed.
	// Detected at construction time, before any simulation work starts.
	ErrInvalidParameter = errors.New("gate: invalid gate parameter")

	// ErrMatrixArity is returned when Matrix is requested from a two-qubit
	// gate or Matrix4 from a single-qubit gate.
	ErrMatrixArity = errors.New("gate: matrix arity mismatch")
)
