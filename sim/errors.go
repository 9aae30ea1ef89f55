// Package sim: sentinel error set.

package sim

import "errors"

var (
	// ErrNilCircuit is returned when Run or RunAll receives a nil circuit.
	ErrNilCircuit = errors.New("sim: circuit is nil")

	// ErrNonPositiveShots is returned for shots ≤ 0.
	ErrNonPositiveShots = errors.New("sim: shot count must be positive")

	// ErrRandInSweep is returned when RunAll is given WithRand: one RNG
	// cannot be shared across concurrent runs without racing, and racing
	// would silently destroy reproducibility. Use WithSeed for sweeps.
	ErrRandInSweep = errors.New("sim: WithRand is not usable in RunAll, use WithSeed")
)
