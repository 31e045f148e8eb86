package astar

import "github.com/katalvlaran/astargrid/grid"

// CostModel holds the integer step costs. Integer costs avoid fractional
// accumulation; 10/14 approximates 1/√2 scaled by ten.
type CostModel struct {
	Adjacent int // orthogonal step
	Diagonal int // diagonal step
}

// DefaultCosts returns the conventional 10/14 cost model.
func DefaultCosts() CostModel {
	return CostModel{Adjacent: 10, Diagonal: 14}
}

// Validate checks 0 < Adjacent <= Diagonal <= 2*Adjacent, the range in which
// the octile heuristic never overestimates.
func (m CostModel) Validate() error {
	if m.Adjacent <= 0 || m.Diagonal < m.Adjacent || m.Diagonal > 2*m.Adjacent {
		return ErrBadCosts
	}
	return nil
}

// Step returns the cost of one move.
func (m CostModel) Step(diagonal bool) int {
	if diagonal {
		return m.Diagonal
	}
	return m.Adjacent
}

// G returns the path cost of a cell reached from a parent with cost parentG.
func (m CostModel) G(parentG, step int) int {
	return parentG + step
}

// F returns g + h.
func F(g, h int) int {
	return g + h
}

// Octile estimates the remaining cost from a to b on an 8-connected grid:
// min(dr,dc) diagonal steps plus |dr-dc| straight steps.
func (m CostModel) Octile(a, b grid.Coord) int {
	dr, dc := absInt(b.Row-a.Row), absInt(b.Col-a.Col)
	diagonal := min(dr, dc)
	straight := absInt(dr - dc)
	return diagonal*m.Diagonal + straight*m.Adjacent
}

// Manhattan estimates the remaining cost from a to b on a 4-connected grid.
func (m CostModel) Manhattan(a, b grid.Coord) int {
	return (absInt(b.Row-a.Row) + absInt(b.Col-a.Col)) * m.Adjacent
}

// Heuristic returns the estimate matching conn: Octile for grid.Conn8,
// Manhattan for grid.Conn4.
func (m CostModel) Heuristic(a, b grid.Coord, conn grid.Connectivity) int {
	if conn == grid.Conn4 {
		return m.Manhattan(a, b)
	}
	return m.Octile(a, b)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
