// Package engine: State allocation and read-side accessors.

package engine

import (
	"fmt"
)

// Tolerance bounds the accepted deviation of Σ|amplitude|² from 1.
// A deviation beyond it after a gate is reported as ErrNonUnitary.
const Tolerance = 1e-9

// amplitudeSize is the storage cost of one complex128 amplitude.
const amplitudeSize = 16

// State is the amplitude vector of one simulation run. It is owned by
// exactly one run, mutated in place by Apply*, and discarded when the
// run completes.
type State struct {
	qubits int
	amps   []complex128
}

// NewState allocates the |0...0⟩ state over `qubits` qubits.
//
// Validation (in order):
//  1. qubits ≥ 1 (ErrNonPositiveQubits).
//  2. estimated storage 16·2^qubits within the memory limit
//     (ErrOutOfMemory) — checked before the allocation, so an
//     impossible request fails fast instead of crashing mid-run.
//
// Complexity: O(2^qubits) to zero the vector.
func NewState(qubits int, opts ...Option) (*State, error) {
	if qubits <= 0 {
		return nil, fmt.Errorf("NewState(%d): %w", qubits, ErrNonPositiveQubits)
	}

	cfg := config{memLimit: DefaultMemoryLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 16·2^59 bytes is already 2^63, the first estimate that overflows
	// int64; anything that large is out of memory on any host, so fail
	// before the shift can wrap.
	if qubits >= 59 {
		return nil, fmt.Errorf("NewState(%d): %w", qubits, ErrOutOfMemory)
	}
	need := int64(amplitudeSize) << qubits
	if need > cfg.memLimit {
		return nil, fmt.Errorf("NewState(%d): need %d bytes, limit %d: %w", qubits, need, cfg.memLimit, ErrOutOfMemory)
	}

	amps := make([]complex128, 1<<qubits)
	amps[0] = 1

	return &State{qubits: qubits, amps: amps}, nil
}

// Qubits returns the register size N.
func (s *State) Qubits() int { return s.qubits }

// Dim returns the basis dimension 2^N.
func (s *State) Dim() int { return len(s.amps) }

// Probability returns |amplitude|² of one combined basis state.
// Complexity: O(1).
func (s *State) Probability(basis int) float64 {
	if basis < 0 || basis >= len(s.amps) {
		return 0
	}
	a := s.amps[basis]

	return real(a)*real(a) + imag(a)*imag(a)
}

// Norm returns Σ|amplitude|² over the whole vector. Complexity: O(2^N).
func (s *State) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return sum
}

// Amplitudes returns a copy of the amplitude vector, index = combined
// basis state (qubit 0 on the least-significant bit). Intended for
// tests and inspection; the sampler reads through Probability to avoid
// the O(2^N) copy.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}
