// Package layout places obstacles on a grid.Grid.
//
// What:
//
//   - A Layout is a closure that blocks cells of an existing grid using a
//     resolved Config (RNG, protected cells).
//   - Apply resolves options once and runs layouts in order, so layouts
//     compose: Apply(g, opts, Checker(), Wall(5)) overlays both.
//   - ByName maps configuration strings to layouts for the CLI.
//
// Layouts:
//
//	Checker()        every cell with an even row and an odd column
//	DiagonalBand()   row i blocks columns i and i+1, only from column 2
//	Wall(col, gaps)  a full-height wall in col, open at the gap rows
//	Rect(from, to)   a filled rectangle (inclusive corners, any order)
//	Random(density)  independent Bernoulli(density) per cell; needs an RNG
//
// Determinism:
//
//   - Cells are visited in row-major order; Random draws exactly one
//     value per cell in that order, so a fixed seed gives a fixed layout.
//
// Protected cells:
//
//   - WithProtected lists cells no layout may block (typically the start
//     and goal). A protected cell is skipped silently.
//
// Errors:
//
//   - ErrNilGrid, ErrNilLayout, ErrNeedRandSource, ErrInvalidDensity,
//     ErrOutOfBounds, ErrUnknownLayout. Branch with errors.Is.
package layout
