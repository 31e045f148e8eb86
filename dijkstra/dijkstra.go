package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/astargrid/grid"
)

// Dijkstra computes shortest distances from the source cell (Options.Source)
// to every cell of g.
//
// Returns:
//
//   - dist: dist[id] is the minimum cost to cell id (Unreachable if none).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; -1 for the
//     source and unreachable cells.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must be in bounds (ErrSourceOutOfBounds) and free (ErrSourceBlocked).
//  4. Costs must be positive (ErrBadCosts).
func Dijkstra(g *grid.Grid, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	if g.Blocked(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceBlocked, cfg.Source)
	}
	if cfg.Adjacent <= 0 || cfg.Diagonal <= 0 {
		return nil, nil, fmt.Errorf("%w: adjacent=%d diagonal=%d", ErrBadCosts, cfg.Adjacent, cfg.Diagonal)
	}

	// 2) Prepare data structures; prev is always tracked, returned on request.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// PathTo rebuilds the source→target path from the dist and prev slices
// returned by Dijkstra. It returns nil when target is unreachable.
func PathTo(dist []int64, prev []int, target int) []int {
	if target < 0 || target >= len(dist) || dist[target] == Unreachable {
		return nil
	}
	var path []int
	for v := target; v >= 0; v = prev[v] {
		path = append(path, v)
		if len(path) > len(prev) {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid // The input grid; read-only within Dijkstra.
	options Options    // Configuration options (Source, costs, etc.).
	dist    []int64    // Cell id → current best distance from Source.
	prev    []int      // Cell id → predecessor on the shortest path.
	visited []bool     // Tracks if a cell's distance is finalized.
	pq      nodePQ     // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	// 1) dist[v] = +∞ and prev[v] = -1 for all cells.
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
		r.prev[v] = -1
	}

	// 2) Distance to the source is zero.
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0

	// 3) Push the source onto the heap.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process is the core loop. It repeatedly extracts the cell with the
// minimum distance and relaxes its legal moves.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Beyond MaxDistance nothing further is explored.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) u's distance is now final.
		r.visited[u] = true

		// 5) Relax all moves out of u.
		r.relax(u)
	}
}

// relax examines every legal move out of u and pushes improved distances.
func (r *runner) relax(u int) {
	from := r.g.Coordinate(u)
	for to := range r.g.Neighborhood(from).All() {
		diagonal, ok := r.g.Step(from, to, r.options.Connectivity, r.options.CornerCutting)
		if !ok {
			continue
		}
		w := r.options.Adjacent
		if diagonal {
			w = r.options.Diagonal
		}
		v := r.g.Index(to)
		newDist := r.dist[u] + w

		// Skip neighbors beyond the cap or not strictly improved.
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: stale entries are ignored when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	id   int   // cell id
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
