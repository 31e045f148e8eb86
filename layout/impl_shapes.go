// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// impl_shapes.go - parameterized walls and rectangles.
//
// Contract:
//   • Wall: col must be inside the grid; gap rows outside the grid are ignored.
//   • Rect: both corners must be inside the grid; corners may be given in any order.
//   • Both return ErrOutOfBounds before blocking anything.

package layout

import (
	"fmt"

	"github.com/katalvlaran/astargrid/grid"
)

// Wall returns a layout blocking column col on every row except gaps.
func Wall(col int, gaps ...int) Layout {
	return func(g *grid.Grid, cfg Config) error {
		if col < 0 || col >= g.Cols() {
			return fmt.Errorf("Wall: col=%d, cols=%d: %w", col, g.Cols(), ErrOutOfBounds)
		}
		open := make(map[int]bool, len(gaps))
		for _, r := range gaps {
			open[r] = true
		}
		for r := 0; r < g.Rows(); r++ {
			if open[r] {
				continue
			}
			if err := cfg.block(g, grid.Coord{Row: r, Col: col}); err != nil {
				return err
			}
		}
		return nil
	}
}

// Rect returns a layout blocking the rectangle spanned by a and b.
func Rect(a, b grid.Coord) Layout {
	return func(g *grid.Grid, cfg Config) error {
		if !g.InBounds(a) || !g.InBounds(b) {
			return fmt.Errorf("Rect: %v-%v in %dx%d: %w", a, b, g.Rows(), g.Cols(), ErrOutOfBounds)
		}
		bounds := grid.Bounds{
			RowLow: min(a.Row, b.Row), RowHigh: max(a.Row, b.Row),
			ColLow: min(a.Col, b.Col), ColHigh: max(a.Col, b.Col),
		}
		for at := range bounds.All() {
			if err := cfg.block(g, at); err != nil {
				return err
			}
		}
		return nil
	}
}
