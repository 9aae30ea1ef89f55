// Package engine: functional options for NewState.
// Option constructors validate and panic on meaningless programmer
// input; resource violations surface as sentinel errors from NewState.

package engine

// DefaultMemoryLimit caps amplitude storage at 16 GiB, i.e. 30 qubits
// of complex128 amplitudes.
const DefaultMemoryLimit int64 = 1 << 34

// Option customizes state allocation.
type Option func(*config)

// config is the resolved allocation policy.
type config struct {
	memLimit int64
}

// WithMemoryLimit overrides the amplitude storage budget in bytes.
// Panics on limit ≤ 0.
func WithMemoryLimit(limit int64) Option {
	if limit <= 0 {
		panic("engine: WithMemoryLimit(limit<=0)")
	}

	return func(c *config) {
		c.memLimit = limit
	}
}
