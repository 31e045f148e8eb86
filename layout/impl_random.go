// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// impl_random.go - Random(density) layout.
//
// Contract:
//   • 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   • cfg.Rand() must be non-nil (else ErrNeedRandSource), even for density 0 or 1.
//   • Exactly one Float64 draw per cell in row-major order, protected cells
//     included, so protecting a cell never shifts the rest of the layout.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package layout

import (
	"fmt"

	"github.com/katalvlaran/astargrid/grid"
)

// Random returns a layout blocking each cell independently with probability density.
func Random(density float64) Layout {
	return func(g *grid.Grid, cfg Config) error {
		if density < 0 || density > 1 {
			return fmt.Errorf("Random: density=%.6f not in [0,1]: %w", density, ErrInvalidDensity)
		}
		rng := cfg.Rand()
		if rng == nil {
			return fmt.Errorf("Random: %w", ErrNeedRandSource)
		}
		for id := range g.Len() {
			if rng.Float64() >= density {
				continue
			}
			if err := cfg.block(g, g.Coordinate(id)); err != nil {
				return err
			}
		}
		return nil
	}
}
