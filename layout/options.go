// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// options.go - functional options for the layout package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package layout

import (
	"math/rand"

	"github.com/katalvlaran/astargrid/grid"
)

// Option customizes the Config handed to every layout.
type Option func(*Config)

// WithRand provides an explicit RNG for stochastic layouts. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *Config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProtected adds cells that no layout may block.
func WithProtected(cells ...grid.Coord) Option {
	return func(c *Config) {
		for _, at := range cells {
			c.protected[at] = struct{}{}
		}
	}
}
