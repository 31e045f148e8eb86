// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// api.go - the Layout type and the Apply orchestrator.

package layout

import (
	"fmt"

	"github.com/katalvlaran/astargrid/grid"
)

// Layout blocks cells of g according to cfg. Layouts validate parameters
// before touching g and return sentinel errors; they never panic.
type Layout func(g *grid.Grid, cfg Config) error

// Apply resolves opts once and runs layouts in order over g.
// The first error is wrapped as "layout: Apply: ..." and returned; cells
// blocked by earlier layouts stay blocked.
//
// Complexity: Σ cost of each layout, typically O(rows·cols).
func Apply(g *grid.Grid, opts []Option, layouts ...Layout) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := newConfig(opts...)
	for i, fn := range layouts {
		if fn == nil {
			return fmt.Errorf("Apply: index %d: %w", i, ErrNilLayout)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}
	return nil
}

// None is a layout that blocks nothing.
func None() Layout {
	return func(*grid.Grid, Config) error { return nil }
}
