// Package dijkstra computes exact single-source shortest distances on a
// grid.Grid with Dijkstra's algorithm.
//
// Overview:
//
//   - Every free cell is a vertex; legal moves (as decided by grid.Grid.Step
//     under the configured connectivity and corner-cutting policy) are
//     edges costing Adjacent or Diagonal.
//   - It uses no heuristic, so it is the reference against which heuristic
//     searches are checked: an A* path cost must equal dist[goal].
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N cells; each cell has at most eight edges.
//   - Space: O(N) for distance and (optional) predecessor slices, plus
//     O(8N) worst-case heap entries under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:          Source was not provided.
//   - ErrNilGrid:           nil *grid.Grid.
//   - ErrSourceOutOfBounds: Source lies outside the grid.
//   - ErrSourceBlocked:     Source is an obstacle.
//   - ErrBadCosts:          a non-positive step cost.
//   - ErrBadMaxDistance:    (via panic) negative WithMaxDistance.
//
// API reference:
//
//	func Dijkstra(g *grid.Grid, opts ...Option) (dist []int64, prev []int, err error)
//
//	  - dist: dist[id] = minimal cost from Source to cell id, or Unreachable.
//	  - prev: prev[id] = predecessor of id on one shortest path, -1 for the
//	          source and unreachable cells. Nil unless WithReturnPath.
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent calls on the same grid are safe as
//     long as nobody mutates it.
package dijkstra
