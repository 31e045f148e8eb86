package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in a text map.
	ErrBadGlyph = errors.New("grid: unknown map glyph")
	// ErrDuplicateMark indicates more than one start or goal mark in a text map.
	ErrDuplicateMark = errors.New("grid: duplicate start or goal mark")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Boundary classifies a cell by its position relative to the grid border.
// The numeric values are stable and may be printed as codes.
type Boundary uint8

const (
	Interior          Boundary = iota // 0
	CornerBottomLeft                  // 1
	EdgeBottom                        // 2
	CornerBottomRight                 // 3
	EdgeLeft                          // 4
	EdgeRight                         // 5
	CornerTopLeft                     // 6
	EdgeTop                           // 7
	CornerTopRight                    // 8
)

var boundaryNames = [...]string{
	"interior",
	"corner-bottom-left",
	"edge-bottom",
	"corner-bottom-right",
	"edge-left",
	"edge-right",
	"corner-top-left",
	"edge-top",
	"corner-top-right",
}

// String implements fmt.Stringer.
func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("boundary(%d)", uint8(b))
}

// IsBorder reports whether b is any edge or corner.
func (b Boundary) IsBorder() bool { return b != Interior }

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Cell holds the static, immutable description of one grid position.
// ID equals the row-major contiguous index.
type Cell struct {
	ID       int      // row-major contiguous index
	Row, Col int      // grid coordinates
	X, Y     float64  // spatial centre of the cell
	Boundary Boundary // border classification
	Obstacle bool     // blocked cell; never entered by a search
}

// Coord returns the cell coordinates.
func (c Cell) Coord() Coord { return Coord{Row: c.Row, Col: c.Col} }

// Options contains tunable parameters for grid construction.
type Options struct {
	// Spacing is the distance between neighboring cell centres.
	Spacing float64
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with Spacing=1.
func DefaultOptions() Options {
	return Options{Spacing: 1}
}

// WithSpacing sets the distance between cell centres.
// Panics if spacing is not positive.
func WithSpacing(spacing float64) Option {
	if spacing <= 0 {
		panic("grid: WithSpacing requires a positive spacing")
	}
	return func(o *Options) {
		o.Spacing = spacing
	}
}

// Marks carries the optional start and goal positions found in a text map.
type Marks struct {
	Start, Goal *Coord
}

// Grid is a rows×cols array of static cells. Obstacles are placed during
// setup; after that the grid is treated as read-only and may be shared by
// several concurrent searches.
type Grid struct {
	rows, cols int
	spacing    float64
	cells      []Cell
	obstacles  int
}
