package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/astargrid/grid"
)

// Field selects the cost printed by Costs.
type Field int

const (
	FieldF Field = iota
	FieldG
	FieldH
)

// String implements fmt.Stringer.
func (f Field) String() string {
	switch f {
	case FieldG:
		return "g"
	case FieldH:
		return "h"
	default:
		return "f"
	}
}

// Costs renders one cost field per cell in a fixed-width table.
// Obstacles print as "#", undiscovered cells as "-".
func Costs(src Source, field Field) string {
	const width = 5
	var sb strings.Builder
	for r := range src.Rows() {
		for c := range src.Cols() {
			v := src.View(grid.Coord{Row: r, Col: c})
			var cell string
			switch {
			case v.Obstacle:
				cell = "#"
			case !v.Discovered:
				cell = "-"
			case field == FieldG:
				cell = fmt.Sprint(v.G)
			case field == FieldH:
				cell = fmt.Sprint(v.H)
			default:
				cell = fmt.Sprint(v.F)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
