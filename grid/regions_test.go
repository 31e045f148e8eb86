package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/grid"
)

func TestRegions_Wall(t *testing.T) {
	g, _, err := grid.Parse(`
		..#..
		..#..
		..#..
	`)
	require.NoError(t, err)

	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		regions := g.Regions(conn)
		require.Len(t, regions, 2, conn.String())
		assert.Len(t, regions[0], 6)
		assert.Len(t, regions[1], 6)
	}
}

func TestRegions_DiagonalGap(t *testing.T) {
	// The free cells touch only diagonally.
	g, _, err := grid.Parse(`
		.#
		#.
	`)
	require.NoError(t, err)

	assert.Len(t, g.Regions(grid.Conn4), 2)
	assert.Len(t, g.Regions(grid.Conn8), 1)

	labels := g.RegionLabels(grid.Conn4)
	assert.Equal(t, []int{0, -1, -1, 1}, labels)
}

func TestRegions_AllBlocked(t *testing.T) {
	g, _, err := grid.Parse("##\n##")
	require.NoError(t, err)
	assert.Empty(t, g.Regions(grid.Conn8))
}
