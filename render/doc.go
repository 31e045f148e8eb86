// Package render draws the state of a grid search for terminals.
//
// Glyphs, highest precedence first:
//
//	@  start or goal, finalized
//	%  start or goal, not finalized
//	&  on the reconstructed path
//	P  finalized (has been a parent)
//	A  on the frontier
//	#  obstacle
//	.  untouched
//
// Each row is framed as "| x x x |", row 0 first. ASCII is plain text;
// Styled colors the same layout with lipgloss; Costs prints per-cell f, g
// or h values for debugging.
package render
