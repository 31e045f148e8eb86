package render

import (
	"strings"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// Source is the read-only view a renderer needs. *astar.Engine implements it.
type Source interface {
	Rows() int
	Cols() int
	View(c grid.Coord) astar.CellView
}

// Glyphs.
const (
	GlyphEndpointDone = '@'
	GlyphEndpoint     = '%'
	GlyphPath         = '&'
	GlyphFinalized    = 'P'
	GlyphOpen         = 'A'
	GlyphObstacle     = '#'
	GlyphFree         = '.'
)

// Glyph returns the symbol for one cell.
func Glyph(v astar.CellView) rune {
	switch {
	case (v.Start || v.Goal) && v.Finalized:
		return GlyphEndpointDone
	case v.Start || v.Goal:
		return GlyphEndpoint
	case v.OnPath:
		return GlyphPath
	case v.Finalized:
		return GlyphFinalized
	case v.Open:
		return GlyphOpen
	case v.Obstacle:
		return GlyphObstacle
	default:
		return GlyphFree
	}
}

// ASCII renders src as framed rows of glyphs.
func ASCII(src Source) string {
	var sb strings.Builder
	sb.Grow(src.Rows() * (2*src.Cols() + 4))
	for r := range src.Rows() {
		sb.WriteString("| ")
		for c := range src.Cols() {
			sb.WriteRune(Glyph(src.View(grid.Coord{Row: r, Col: c})))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
