package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/grid"
)

//----------------------------------------------------------------------------//
// New and accessors
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

func TestNew_CellLayout(t *testing.T) {
	g, err := grid.New(3, 4, grid.WithSpacing(0.5))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 0.5, g.Spacing())

	for id := 0; id < g.Len(); id++ {
		c := g.Cell(id)
		assert.Equal(t, id, c.ID)
		assert.Equal(t, id, g.Index(c.Coord()), "ID must equal the row-major index")
		assert.Equal(t, c.Coord(), g.Coordinate(id))
		assert.Equal(t, float64(c.Col)*0.5, c.X)
		assert.Equal(t, float64(c.Row)*0.5, c.Y)
		assert.False(t, c.Obstacle)
	}
}

func TestWithSpacing_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { grid.WithSpacing(0) })
	assert.Panics(t, func() { grid.WithSpacing(-1) })
}

func TestInBoundsAndAt(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	for _, c := range []grid.Coord{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.At(c)
		assert.NoError(t, err)
	}
	for _, c := range []grid.Coord{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.At(c)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}
}

func TestSetObstacle(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetObstacle(grid.Coord{Row: 1, Col: 1}, true))
	require.NoError(t, g.SetObstacle(grid.Coord{Row: 1, Col: 1}, true)) // idempotent
	assert.Equal(t, 1, g.Obstacles())
	assert.True(t, g.Obstacle(4))
	assert.True(t, g.Blocked(grid.Coord{Row: 1, Col: 1}))
	assert.True(t, g.Blocked(grid.Coord{Row: 5, Col: 5}), "out of bounds counts as blocked")

	require.NoError(t, g.SetObstacle(grid.Coord{Row: 1, Col: 1}, false))
	assert.Equal(t, 0, g.Obstacles())

	assert.ErrorIs(t, g.SetObstacle(grid.Coord{Row: 3, Col: 0}, true), grid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Boundary classification
//----------------------------------------------------------------------------//

func TestClassify_3x3(t *testing.T) {
	// Row 0 is the bottom row.
	want := [3][3]grid.Boundary{
		{grid.CornerBottomLeft, grid.EdgeBottom, grid.CornerBottomRight},
		{grid.EdgeLeft, grid.Interior, grid.EdgeRight},
		{grid.CornerTopLeft, grid.EdgeTop, grid.CornerTopRight},
	}
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell, err := g.At(grid.Coord{Row: r, Col: c})
			require.NoError(t, err)
			assert.Equal(t, want[r][c], cell.Boundary, "cell (%d,%d)", r, c)
		}
	}
}

func TestClassify_Degenerate(t *testing.T) {
	assert.Equal(t, grid.CornerBottomLeft, grid.Classify(0, 0, 1, 1))
	assert.Equal(t, grid.EdgeBottom, grid.Classify(0, 1, 1, 3))
	assert.Equal(t, grid.CornerBottomRight, grid.Classify(0, 2, 1, 3))
	assert.Equal(t, grid.CornerTopLeft, grid.Classify(2, 0, 3, 1))
	assert.Equal(t, grid.EdgeLeft, grid.Classify(1, 0, 3, 1))
}

func TestBoundary_String(t *testing.T) {
	assert.Equal(t, "interior", grid.Interior.String())
	assert.Equal(t, "corner-top-right", grid.CornerTopRight.String())
	assert.Equal(t, "boundary(42)", grid.Boundary(42).String())
	assert.False(t, grid.Interior.IsBorder())
	assert.True(t, grid.EdgeTop.IsBorder())
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse(t *testing.T) {
	g, marks, err := grid.Parse(`
		S.#
		.##
		..G
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.Obstacles())
	require.NotNil(t, marks.Start)
	require.NotNil(t, marks.Goal)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, *marks.Start)
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, *marks.Goal)
	assert.Equal(t, "..#\n.##\n...\n", g.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "  \n ", grid.ErrEmptyGrid},
		{"Ragged", "...\n..", grid.ErrNonRectangular},
		{"BadGlyph", "..x", grid.ErrBadGlyph},
		{"TwoStarts", "S.S", grid.ErrDuplicateMark},
		{"TwoGoals", "G\nG", grid.ErrDuplicateMark},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := grid.Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
