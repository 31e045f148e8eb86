package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/astargrid/grid"
)

// Theme holds one lipgloss style per glyph class plus the row frame.
type Theme struct {
	Endpoint  lipgloss.Style
	Path      lipgloss.Style
	Finalized lipgloss.Style
	Open      lipgloss.Style
	Obstacle  lipgloss.Style
	Free      lipgloss.Style
	Frame     lipgloss.Style
}

// DefaultTheme returns a 256-color theme readable on dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Endpoint:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Path:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Finalized: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		Open:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Obstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Free:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Frame:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// style picks the style for a glyph.
func (t Theme) style(g rune) lipgloss.Style {
	switch g {
	case GlyphEndpointDone, GlyphEndpoint:
		return t.Endpoint
	case GlyphPath:
		return t.Path
	case GlyphFinalized:
		return t.Finalized
	case GlyphOpen:
		return t.Open
	case GlyphObstacle:
		return t.Obstacle
	default:
		return t.Free
	}
}

// Styled renders src like ASCII with each glyph colored by theme.
// Without a color-capable terminal lipgloss degrades to the plain layout.
func Styled(src Source, theme Theme) string {
	var sb strings.Builder
	bar := theme.Frame.Render("|")
	for r := range src.Rows() {
		sb.WriteString(bar)
		sb.WriteByte(' ')
		for c := range src.Cols() {
			g := Glyph(src.View(grid.Coord{Row: r, Col: c}))
			sb.WriteString(theme.style(g).Render(string(g)))
			sb.WriteByte(' ')
		}
		sb.WriteString(bar)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Legend returns a one-line key for the glyphs, styled with theme.
func Legend(theme Theme) string {
	items := []struct {
		g     rune
		label string
	}{
		{GlyphEndpointDone, "endpoint"},
		{GlyphPath, "path"},
		{GlyphFinalized, "finalized"},
		{GlyphOpen, "frontier"},
		{GlyphObstacle, "obstacle"},
		{GlyphFree, "free"},
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, theme.style(it.g).Render(string(it.g))+" "+it.label)
	}
	return strings.Join(parts, "  ")
}
