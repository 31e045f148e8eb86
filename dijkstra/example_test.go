// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/astargrid/dijkstra"
	"github.com/katalvlaran/astargrid/grid"
)

// ExampleDijkstra computes distances from the top-left corner of a grid
// with a short wall, then rebuilds one shortest path.
func ExampleDijkstra() {
	// 1) A 3×4 grid with a two-cell wall in column 1.
	g, _, err := grid.Parse(`
.#..
.#..
....`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Distances and predecessors from (0,0).
	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(grid.Coord{Row: 0, Col: 0}),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Path to the top-right corner.
	target := g.Index(grid.Coord{Row: 0, Col: 3})
	fmt.Println("cost:", dist[target])
	for _, id := range dijkstra.PathTo(dist, prev, target) {
		fmt.Print(g.Coordinate(id), " ")
	}
	fmt.Println()
	// Output:
	// cost: 52
	// (0,0) (1,0) (2,1) (1,2) (0,3)
}
