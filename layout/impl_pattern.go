// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// impl_pattern.go - fixed obstacle patterns.
//
// Checker:
//   • Blocks (r,c) with r even and c odd, row-major.
//   • Every odd row stays a free corridor.
//
// DiagonalBand:
//   • Row i blocks columns i and i+1 where they are ≥ 2 and inside the grid,
//     producing a two-cell-thick diagonal that starts below the top rows.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package layout

import (
	"github.com/katalvlaran/astargrid/grid"
)

// minBandCol is the first column the diagonal band may occupy.
const minBandCol = 2

// Checker returns the even-row/odd-column pattern.
func Checker() Layout {
	return func(g *grid.Grid, cfg Config) error {
		for r := 0; r < g.Rows(); r += 2 {
			for c := 1; c < g.Cols(); c += 2 {
				if err := cfg.block(g, grid.Coord{Row: r, Col: c}); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// DiagonalBand returns the two-cell diagonal band pattern.
func DiagonalBand() Layout {
	return func(g *grid.Grid, cfg Config) error {
		for r := 0; r < g.Rows(); r++ {
			for _, c := range [2]int{r, r + 1} {
				if c < minBandCol || c >= g.Cols() {
					continue
				}
				if err := cfg.block(g, grid.Coord{Row: r, Col: c}); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
