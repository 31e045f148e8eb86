package grid

import (
	"fmt"
	"strings"
)

// Text map glyphs understood by Parse.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
)

// New constructs an obstacle-free rows×cols grid.
// Cells are created in row-major order; cell (r,c) gets ID r*cols+c,
// centre (c*spacing, r*spacing) and its Boundary classification.
// Returns ErrEmptyGrid if rows or cols is less than one.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		spacing: cfg.Spacing,
		cells:   make([]Cell, rows*cols),
	}
	id := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[id] = Cell{
				ID:       id,
				Row:      r,
				Col:      c,
				X:        float64(c) * cfg.Spacing,
				Y:        float64(r) * cfg.Spacing,
				Boundary: Classify(r, c, rows, cols),
			}
			id++
		}
	}

	return g, nil
}

// Parse builds a grid from a text map, one line per row, row 0 first.
// '.' is free, '#' an obstacle, 'S' and 'G' free cells marking the start
// and goal. Blank leading/trailing lines and surrounding spaces are ignored.
func Parse(text string, opts ...Option) (*Grid, Marks, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, Marks{}, ErrEmptyGrid
	}
	width := len([]rune(lines[0]))
	for _, line := range lines {
		if len([]rune(line)) != width {
			return nil, Marks{}, ErrNonRectangular
		}
	}

	g, err := New(len(lines), width, opts...)
	if err != nil {
		return nil, Marks{}, err
	}
	var marks Marks
	for r, line := range lines {
		for c, ch := range []rune(line) {
			at := Coord{Row: r, Col: c}
			switch ch {
			case GlyphFree:
			case GlyphObstacle:
				g.setObstacle(g.Index(at), true)
			case GlyphStart:
				if marks.Start != nil {
					return nil, Marks{}, fmt.Errorf("%w: second %q at %v", ErrDuplicateMark, ch, at)
				}
				marks.Start = &at
			case GlyphGoal:
				if marks.Goal != nil {
					return nil, Marks{}, fmt.Errorf("%w: second %q at %v", ErrDuplicateMark, ch, at)
				}
				marks.Goal = &at
			default:
				return nil, Marks{}, fmt.Errorf("%w: %q at %v", ErrBadGlyph, ch, at)
			}
		}
	}

	return g, marks, nil
}

// Classify returns the Boundary of (row,col) in a rows×cols grid.
// Rules are evaluated in code order, so degenerate single-row or
// single-column grids resolve to the first matching class.
// Complexity: O(1).
func Classify(row, col, rows, cols int) Boundary {
	rowEnd, colEnd := rows-1, cols-1
	switch {
	case row == 0 && col == 0:
		return CornerBottomLeft
	case row == 0 && col < colEnd:
		return EdgeBottom
	case row == 0 && col == colEnd:
		return CornerBottomRight
	case row > 0 && row < rowEnd && col == 0:
		return EdgeLeft
	case row > 0 && row < rowEnd && col == colEnd:
		return EdgeRight
	case row == rowEnd && col == 0:
		return CornerTopLeft
	case row == rowEnd && col > 0 && col < colEnd:
		return EdgeTop
	case row == rowEnd && col == colEnd:
		return CornerTopRight
	}
	return Interior
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Spacing returns the distance between neighboring cell centres.
func (g *Grid) Spacing() float64 { return g.spacing }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index (== cell ID). c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(id int) Coord {
	return Coord{Row: id / g.cols, Col: id % g.cols}
}

// Cell returns the static cell with the given id. id must be in [0, Len()).
func (g *Grid) Cell(id int) Cell { return g.cells[id] }

// At returns the cell at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.Index(c)], nil
}

// SetObstacle marks or clears the obstacle flag of the cell at c.
// Obstacles belong to setup; do not call while a search over g is running.
func (g *Grid) SetObstacle(c Coord, blocked bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.setObstacle(g.Index(c), blocked)
	return nil
}

func (g *Grid) setObstacle(id int, blocked bool) {
	if g.cells[id].Obstacle == blocked {
		return
	}
	g.cells[id].Obstacle = blocked
	if blocked {
		g.obstacles++
	} else {
		g.obstacles--
	}
}

// Obstacle reports whether the cell with the given id is blocked.
func (g *Grid) Obstacle(id int) bool { return g.cells[id].Obstacle }

// Blocked reports whether c is blocked. Out-of-bounds coordinates count as blocked.
func (g *Grid) Blocked(c Coord) bool {
	return !g.InBounds(c) || g.cells[g.Index(c)].Obstacle
}

// Obstacles returns the number of blocked cells.
func (g *Grid) Obstacles() int { return g.obstacles }

// String renders the grid as a text map that Parse accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c].Obstacle {
				sb.WriteByte(GlyphObstacle)
			} else {
				sb.WriteByte(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
