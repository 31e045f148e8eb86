package grid

import "iter"

// Bounds is an inclusive rectangle of coordinates:
// [RowLow, RowHigh] × [ColLow, ColHigh].
type Bounds struct {
	RowLow, RowHigh int
	ColLow, ColHigh int
}

// Clamp returns the 3×3 neighborhood of (row,col) clamped to a rows×cols grid.
// It replaces a nine-way boundary switch: at an edge or corner the box simply
// shrinks. The centre cell is part of the box; callers skip it themselves.
// Complexity: O(1).
func Clamp(row, col, rows, cols int) Bounds {
	return Bounds{
		RowLow:  max(0, row-1),
		RowHigh: min(rows-1, row+1),
		ColLow:  max(0, col-1),
		ColHigh: min(cols-1, col+1),
	}
}

// Neighborhood returns Clamp for c over g's extents.
func (g *Grid) Neighborhood(c Coord) Bounds {
	return Clamp(c.Row, c.Col, g.rows, g.cols)
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= b.RowLow && c.Row <= b.RowHigh && c.Col >= b.ColLow && c.Col <= b.ColHigh
}

// Len returns the number of coordinates in b (0 for an empty box).
func (b Bounds) Len() int {
	if b.RowHigh < b.RowLow || b.ColHigh < b.ColLow {
		return 0
	}
	return (b.RowHigh - b.RowLow + 1) * (b.ColHigh - b.ColLow + 1)
}

// All yields every coordinate of b in row-major order.
func (b Bounds) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := b.RowLow; r <= b.RowHigh; r++ {
			for c := b.ColLow; c <= b.ColHigh; c++ {
				if !yield(Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// IsDiagonal reports whether from→to is a diagonal displacement
// (both row and column change).
func IsDiagonal(from, to Coord) bool {
	return from.Row != to.Row && from.Col != to.Col
}

// Step reports whether a single move from→to is legal and whether it is diagonal.
//
// A move is rejected when to is out of bounds or blocked, when from==to,
// when the cells are not 8-neighbors, when a diagonal is requested under
// Conn4, or, with cornerCutting=false, when a diagonal passes between two
// cells of which at least one is blocked (the two orthogonal cells shared
// by from and to).
// Complexity: O(1).
func (g *Grid) Step(from, to Coord, conn Connectivity, cornerCutting bool) (diagonal, ok bool) {
	if !g.InBounds(to) || g.Blocked(to) {
		return false, false
	}
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if dr > 1 || dc > 1 || dr+dc == 0 {
		return false, false
	}
	diagonal = dr == 1 && dc == 1
	if !diagonal {
		return false, true
	}
	if conn == Conn4 {
		return true, false
	}
	if !cornerCutting && (g.Blocked(Coord{Row: from.Row, Col: to.Col}) || g.Blocked(Coord{Row: to.Row, Col: from.Col})) {
		return true, false
	}
	return true, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
