package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/dijkstra"
	"github.com/katalvlaran/astargrid/grid"
)

// randomCase builds a small grid with free start and goal cells.
func randomCase(t *testing.T, rng *rand.Rand, density float64) (*grid.Grid, grid.Coord, grid.Coord) {
	t.Helper()
	rows, cols := 2+rng.Intn(8), 2+rng.Intn(8)
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	for id := range g.Len() {
		if rng.Float64() < density {
			require.NoError(t, g.SetObstacle(g.Coordinate(id), true))
		}
	}
	start := grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	goal := grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	require.NoError(t, g.SetObstacle(start, false))
	require.NoError(t, g.SetObstacle(goal, false))
	return g, start, goal
}

type policy struct {
	name   string
	conn   grid.Connectivity
	corner bool
}

var policies = []policy{
	{"Conn8CornerCut", grid.Conn8, true},
	{"Conn8NoCornerCut", grid.Conn8, false},
	{"Conn4", grid.Conn4, true},
}

// checkContiguous asserts every consecutive pair is a legal single move and
// that the step costs add up to cost.
func checkContiguous(t *testing.T, g *grid.Grid, p policy, path []int, cost int) {
	t.Helper()
	m := astar.DefaultCosts()
	sum := 0
	for i, id := range path {
		require.False(t, g.Obstacle(id), "path cell %v is an obstacle", g.Coordinate(id))
		if i == 0 {
			continue
		}
		from, to := g.Coordinate(path[i-1]), g.Coordinate(id)
		diagonal, ok := g.Step(from, to, p.conn, p.corner)
		require.True(t, ok, "illegal move %v→%v", from, to)
		sum += m.Step(diagonal)
	}
	assert.Equal(t, cost, sum)
}

// TestOptimalAgainstDijkstra compares A* with the exact baseline on random
// grids, both obstacle-free and obstructed, under every movement policy.
func TestOptimalAgainstDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	relaxations := 0

	for _, p := range policies {
		t.Run(p.name, func(t *testing.T) {
			for trial := range 150 {
				density := 0.0
				if trial%3 != 0 {
					density = 0.3
				}
				g, start, goal := randomCase(t, rng, density)

				res, err := astar.Search(g, start, goal,
					astar.WithConnectivity(p.conn),
					astar.WithCornerCutting(p.corner),
					astar.WithInvariantChecks(),
				)
				require.NoError(t, err, "trial %d", trial)

				dist, _, err := dijkstra.Dijkstra(g,
					dijkstra.Source(start),
					dijkstra.WithConnectivity(p.conn),
					dijkstra.WithCornerCutting(p.corner),
				)
				require.NoError(t, err)

				want := dist[g.Index(goal)]
				if want == dijkstra.Unreachable {
					assert.Equal(t, astar.StatusUnreachable, res.Status, "trial %d", trial)
					continue
				}
				require.Equal(t, astar.StatusFound, res.Status, "trial %d", trial)
				assert.Equal(t, int(want), res.Cost, "trial %d %v→%v\n%s", trial, start, goal, g)
				assert.Equal(t, g.Index(start), res.Path[0])
				assert.Equal(t, g.Index(goal), res.Path[len(res.Path)-1])
				checkContiguous(t, g, p, res.Path, res.Cost)
				relaxations += res.Relaxations
			}
		})
	}
	assert.Positive(t, relaxations, "the random corpus must exercise decrease-cost")
}

// TestFrontierKindsAgree checks that heap and linear frontiers select the
// same cells in the same order.
func TestFrontierKindsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := range 100 {
		g, start, goal := randomCase(t, rng, 0.25)

		var orders [2][]int
		for i, kind := range []astar.FrontierKind{astar.FrontierHeap, astar.FrontierLinear} {
			hooks := astar.Hooks{OnFinalize: func(id int) { orders[i] = append(orders[i], id) }}
			_, err := astar.Search(g, start, goal, astar.WithFrontier(kind), astar.WithHooks(hooks))
			require.NoError(t, err)
		}
		assert.Equal(t, orders[0], orders[1], "trial %d", trial)
	}
}

// TestFinalizedCostsNeverChange records g at finalization and re-checks it
// after every later step.
func TestFinalizedCostsNeverChange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := range 60 {
		g, start, goal := randomCase(t, rng, 0.3)
		e, err := astar.New(g, start, goal)
		require.NoError(t, err)

		frozen := map[int]int{}
		for {
			st, err := e.Step()
			require.NoError(t, err)
			for id := range g.Len() {
				v := e.ViewID(id)
				if !v.Finalized {
					continue
				}
				if g0, ok := frozen[id]; ok {
					require.Equal(t, g0, v.G, "trial %d cell %d", trial, id)
				} else {
					frozen[id] = v.G
				}
			}
			require.NoError(t, e.Verify())
			if st.Terminal() {
				break
			}
		}
	}
}

// TestRelaxationRecomputesF checks f == g + h at the moment of every
// decrease-cost.
func TestRelaxationRecomputesF(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range 80 {
		g, start, goal := randomCase(t, rng, 0.3)

		var e *astar.Engine
		hooks := astar.Hooks{OnRelax: func(id int) {
			v := e.ViewID(id)
			assert.Equal(t, v.G+v.H, v.F)
			assert.True(t, v.Open)
		}}
		var err error
		e, err = astar.New(g, start, goal, astar.WithHooks(hooks))
		require.NoError(t, err)
		_, err = e.Run()
		require.NoError(t, err)
	}
}

// TestHeuristicAdmissible checks h(cell) against the exact remaining cost
// from every cell to the goal on obstacle-free grids.
func TestHeuristicAdmissible(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	m := astar.DefaultCosts()
	for range 30 {
		g, _, goal := randomCase(t, rng, 0)
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goal))
		require.NoError(t, err)
		for id := range g.Len() {
			assert.LessOrEqual(t, int64(m.Octile(g.Coordinate(id), goal)), dist[id])
		}
	}
}
