// SPDX-License-Identifier: MIT

// Package matrix: functional options for the randomized constructor.
//
// Contract (strict):
//   - Options are functional (type Option func(*randomConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil RNG);
//     constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//     Without either, NewRandom draws a fresh seed from the runtime source.
package matrix

import "math/rand/v2"

// Option customizes NewRandom by mutating a randomConfig before drawing.
type Option func(*randomConfig)

// randomConfig is the resolved option state for NewRandom.
type randomConfig struct {
	rng *rand.Rand // nil until an option or the default seeds it
}

// WithRand provides an explicit RNG. The caller owns the seed policy and may
// share one stream across several constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithSeed creates a new PCG-backed *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// gatherOptions applies opts in order and fills in the unseeded default.
func gatherOptions(opts ...Option) randomConfig {
	var cfg randomConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}
