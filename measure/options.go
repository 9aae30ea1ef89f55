// Package measure: functional options controlling the sampling RNG.
// Determinism is explicit: seeding happens via WithSeed or WithRand,
// never through hidden globals.

package measure

import (
	"math/rand"
)

// Option customizes sampling. Applying N options costs O(N).
type Option func(*config)

// config is the resolved sampling configuration.
type config struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG for the draws. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("measure: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so that repeated Sample calls over the
// same distribution and shot count return identical outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
