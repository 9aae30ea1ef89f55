// Package circuit: functional options for New.
// Option constructors validate and panic on meaningless programmer
// input (nil/empty); user-range violations surface as sentinel errors
// from New, not panics.

package circuit

// Option customizes circuit construction. Applying N options is O(N).
type Option func(*config)

// config is the resolved construction state; immutable after New.
type config struct {
	measured []int // nil means "measure all qubits"
}

// WithMeasured restricts measurement to the given qubits. The list is
// deduplicated and normalized to ascending order; each index is range
// checked against the declared qubit count inside New.
// Panics on an empty list — measuring nothing is a programmer error.
func WithMeasured(qubits ...int) Option {
	if len(qubits) == 0 {
		panic("circuit: WithMeasured() requires at least one qubit")
	}
	qs := make([]int, len(qubits))
	copy(qs, qubits)

	return func(c *config) {
		c.measured = qs
	}
}
