// Package sim: functional options for Run and RunAll.
// Option constructors validate and panic on meaningless programmer
// input; everything else resolves into an immutable runConfig.

package sim

import (
	"math/rand"
	"runtime"
)

// Option customizes a run or a sweep.
type Option func(*runConfig)

// runConfig is the resolved execution configuration.
type runConfig struct {
	rng      *rand.Rand // explicit RNG (Run only)
	seed     int64
	seeded   bool
	memLimit int64 // 0 means engine default
	workers  int   // RunAll fan-out; 0 means NumCPU
}

// WithSeed makes the run (or every run of a sweep) reproducible.
// RunAll derives per-run seeds as seed+index.
func WithSeed(seed int64) Option {
	return func(c *runConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithRand provides an explicit RNG for a single Run. Panics on nil.
// RunAll rejects this option with ErrRandInSweep.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sim: WithRand(nil)")
	}

	return func(c *runConfig) {
		c.rng = r
	}
}

// WithMemoryLimit forwards an amplitude storage budget (bytes) to the
// engine. Panics on limit ≤ 0.
func WithMemoryLimit(limit int64) Option {
	if limit <= 0 {
		panic("sim: WithMemoryLimit(limit<=0)")
	}

	return func(c *runConfig) {
		c.memLimit = limit
	}
}

// WithWorkers bounds RunAll's concurrent runs. Panics on n ≤ 0.
// Defaults to runtime.NumCPU().
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("sim: WithWorkers(n<=0)")
	}

	return func(c *runConfig) {
		c.workers = n
	}
}

// resolve applies opts over defaults.
func resolve(opts []Option) runConfig {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.NumCPU()
	}

	return cfg
}
