// Package dijkstra_test contains unit tests for the grid Dijkstra
// implementation: validation, distances under both connectivities and
// corner policies, MaxDistance, and path reconstruction.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/dijkstra"
	"github.com/katalvlaran/astargrid/grid"
)

func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, _, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := mustParse(t, "..\n.#")

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(grid.Coord{}))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{Row: 2, Col: 0}))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{Row: 1, Col: 1}))
	assert.ErrorIs(t, err, dijkstra.ErrSourceBlocked)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{}), dijkstra.WithCosts(0, 14))
	assert.ErrorIs(t, err, dijkstra.ErrBadCosts)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_OpenGrid(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{}))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")

	assert.Equal(t, int64(0), dist[0])
	assert.Equal(t, int64(56), dist[g.Index(grid.Coord{Row: 4, Col: 4})])
	assert.Equal(t, int64(14*2+10*2), dist[g.Index(grid.Coord{Row: 2, Col: 4})])
}

func TestDijkstra_Conn4(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g,
		dijkstra.Source(grid.Coord{}),
		dijkstra.WithConnectivity(grid.Conn4),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(40), dist[g.Index(grid.Coord{Row: 2, Col: 2})])
}

func TestDijkstra_CornerPolicy(t *testing.T) {
	g := mustParse(t, "...\n.#.\n...")
	goal := g.Index(grid.Coord{Row: 2, Col: 2})

	cases := []struct {
		name  string
		allow bool
		want  int64
	}{
		{"Allow", true, 34},
		{"Forbid", false, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, _, err := dijkstra.Dijkstra(g,
				dijkstra.Source(grid.Coord{}),
				dijkstra.WithCornerCutting(tc.allow),
			)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dist[goal])
		})
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := mustParse(t, ".#.\n.#.\n.#.")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{}), dijkstra.WithReturnPath())
	require.NoError(t, err)

	far := g.Index(grid.Coord{Row: 0, Col: 2})
	assert.Equal(t, int64(dijkstra.Unreachable), dist[far])
	assert.Equal(t, -1, prev[far])
	assert.Nil(t, dijkstra.PathTo(dist, prev, far))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g, err := grid.New(1, 5)
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{}), dijkstra.WithMaxDistance(20))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 10, 20, dijkstra.Unreachable, dijkstra.Unreachable}, dist)
}

// ------------------------------------------------------------------------
// 3. Path reconstruction
// ------------------------------------------------------------------------

func TestPathTo(t *testing.T) {
	g := mustParse(t, "...\n##.\n...")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Coord{}), dijkstra.WithReturnPath())
	require.NoError(t, err)

	target := g.Index(grid.Coord{Row: 2, Col: 0})
	path := dijkstra.PathTo(dist, prev, target)
	require.NotEmpty(t, path)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, target, path[len(path)-1])

	// (0,0)→(0,1)→(1,2)→(2,1)→(2,0) = 10+14+14+10
	assert.Equal(t, int64(48), dist[target])
	assert.Len(t, path, 5)

	assert.Equal(t, []int{0}, dijkstra.PathTo(dist, prev, 0))
	assert.Nil(t, dijkstra.PathTo(dist, prev, -1))
}
