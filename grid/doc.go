// Package grid models a discretized 2D cartesian grid for pathfinding:
// static cells with row-major ids, boundary classification, obstacles and
// the neighborhood rules a search engine needs.
//
// What:
//
//   - Grid is a rows×cols array of static Cells. A cell's ID equals its
//     row-major contiguous index (row*cols + col).
//   - Each cell carries its spatial centre (X, Y) derived from the spacing,
//     a Boundary classification (interior, four edges, four corners) and
//     an obstacle flag set during setup.
//   - Clamp / Neighborhood return the 3×3 (or smaller at edges) box around a
//     cell, clamped to the grid extents.
//   - Step decides whether a single move between two cells is legal under a
//     Connectivity (Conn4 or Conn8) and a corner-cutting policy.
//   - Regions labels connected free-space components.
//
// Why:
//
//   - Search state is deliberately NOT stored here. A Grid is immutable once
//     obstacles are placed, so any number of searches may share it read-only,
//     each with its own private search state.
//
// Coordinates:
//
//	row 0 is the bottom row, column 0 the left column (origin bottom-left).
//	X = col*spacing, Y = row*spacing.
//
//	    row 2 │ 6 7 8      Boundary codes:
//	    row 1 │ 3 4 5        6 7 8
//	    row 0 │ 0 1 2        4 0 5
//	          └──────        1 2 3
//	           col 0..2
//
// Complexity:
//
//   - New, Parse:   O(R×C) time and memory.
//   - Clamp, Step:  O(1).
//   - Regions:      O(R×C×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols < 1, or an empty text map.
//   - ErrNonRectangular: text map rows of differing lengths.
//   - ErrBadGlyph:       unknown character in a text map.
//   - ErrDuplicateMark:  more than one S or G in a text map.
//   - ErrOutOfBounds:    coordinate outside the grid.
package grid
