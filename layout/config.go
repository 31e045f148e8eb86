// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// config.go - resolved configuration passed to every Layout.
//
// Deterministic defaults:
//   • rng       = nil   (stochastic layouts fail with ErrNeedRandSource)
//   • protected = empty

package layout

import (
	"math/rand"

	"github.com/katalvlaran/astargrid/grid"
)

// Config aggregates the knobs used by layouts. It is passed by value and
// exposes read-only accessors so custom layouts can honor it.
type Config struct {
	rng       *rand.Rand
	protected map[grid.Coord]struct{}
}

// newConfig starts from the defaults and applies opts in order (last wins).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) Config {
	cfg := Config{protected: make(map[grid.Coord]struct{})}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Rand returns the configured RNG or nil.
func (c Config) Rand() *rand.Rand { return c.rng }

// Protected reports whether c must stay free.
func (c Config) Protected(at grid.Coord) bool {
	_, ok := c.protected[at]
	return ok
}

// block marks at as an obstacle unless it is protected.
func (c Config) block(g *grid.Grid, at grid.Coord) error {
	if c.Protected(at) {
		return nil
	}
	return g.SetObstacle(at, true)
}
