package astar

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/astargrid/grid"
)

// cellState is the mutable search state of one cell, owned by the Engine.
type cellState struct {
	g, h, f    int
	parent     int // -1 if none
	discovered bool
	finalized  bool
	onPath     bool
}

// Engine runs one A* search at a time over a shared, read-only grid.Grid.
// Create it with New or Build, drive it with Step or Run, and call Reset
// for an independent re-run.
type Engine struct {
	g           *grid.Grid
	start, goal int
	opts        Options
	labels      []int // free-space region labels; nil unless ReachabilityCheck

	state    []cellState
	frontier Frontier
	current  int

	status      Status
	err         error
	result      Result
	iterations  int
	discovered  int
	relaxations int
	runID       string
	log         *zap.Logger
}

// New validates the configuration and returns an Engine ready to run from
// start to goal over g. The start cell is finalized on return.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must lie inside g (ErrOutOfBounds).
//  3. start and goal must not be obstacles (ErrStartBlocked, ErrGoalBlocked).
//  4. step costs must be in range (ErrBadCosts).
//
// Every returned error wraps ErrConfiguration.
func New(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Engine, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, g.Rows(), g.Cols())
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if g.Blocked(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}
	if err := cfg.Costs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: adjacent=%d diagonal=%d", err, cfg.Costs.Adjacent, cfg.Costs.Diagonal)
	}

	// 3) Allocate private search state
	e := &Engine{
		g:        g,
		start:    g.Index(start),
		goal:     g.Index(goal),
		opts:     cfg,
		state:    make([]cellState, g.Len()),
		frontier: newFrontier(cfg.Frontier, g.Len()),
	}
	if cfg.ReachabilityCheck {
		e.labels = g.RegionLabels(cfg.Connectivity)
	}

	// 4) Initialize the first run
	e.Reset()

	return e, nil
}

// Build creates a rows×cols grid, blocks every cell for which blocked
// returns true, and returns an Engine searching it from start to goal with
// the given step costs. A nil blocked predicate means no obstacles.
func Build(rows, cols int, blocked func(grid.Coord) bool, start, goal grid.Coord, adjacent, diagonal int, opts ...Option) (*Engine, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if blocked != nil {
		for id := range g.Len() {
			if c := g.Coordinate(id); blocked(c) {
				_ = g.SetObstacle(c, true) // c is in bounds by construction
			}
		}
	}
	all := append([]Option{WithCosts(adjacent, diagonal)}, opts...)
	return New(g, start, goal, all...)
}

// Search is a convenience wrapper: New followed by Run.
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (Result, error) {
	e, err := New(g, start, goal, opts...)
	if err != nil {
		return Result{Status: StatusFailed}, err
	}
	return e.Run()
}

// Reset clears all search state and starts an independent run with a new
// run id. Reset never fails; a run may be Unreachable immediately when the
// reachability pre-check proves start and goal disconnected.
func (e *Engine) Reset() {
	// 1) Clear per-cell state and the frontier
	for i := range e.state {
		e.state[i] = cellState{parent: -1}
	}
	e.frontier.Reset()

	// 2) Clear run counters and assign a run id
	e.status, e.err, e.result = StatusRunning, nil, Result{}
	e.iterations, e.discovered, e.relaxations = 0, 0, 0
	e.runID = uuid.New().String()
	e.log = e.opts.Logger.With(zap.String("run_id", e.runID))

	// 3) The start cell is the first parent: g=0, h once, finalized
	st := &e.state[e.start]
	st.h = e.heuristic(e.start)
	st.f = F(0, st.h)
	st.discovered = true
	e.current = e.start
	e.log.Debug("search started",
		zap.Stringer("start", e.g.Coordinate(e.start)),
		zap.Stringer("goal", e.g.Coordinate(e.goal)),
		zap.Stringer("connectivity", e.opts.Connectivity),
		zap.Bool("corner_cutting", e.opts.CornerCutting),
		zap.Stringer("frontier", e.opts.Frontier),
	)
	e.finalize(e.start)

	// 4) Optional pre-check: different free-space regions never connect
	if e.labels != nil && e.labels[e.start] != e.labels[e.goal] {
		e.finish(StatusUnreachable, nil)
	}
}

// Step advances the search by one iteration and returns the new status.
// Once a terminal status is reached, Step keeps returning it with the same error.
func (e *Engine) Step() (Status, error) {
	if e.status.Terminal() {
		return e.status, e.err
	}

	// 1) Goal finalized → Found
	if e.current == e.goal {
		return e.finish(StatusFound, nil)
	}

	// 2) Iteration cap → Aborted
	if e.iterations >= e.opts.MaxIterations {
		return e.finish(StatusAborted, fmt.Errorf("%w: after %d iterations", ErrAborted, e.iterations))
	}

	// 3) Expand the current parent
	if err := e.expand(e.current); err != nil {
		return e.finish(StatusFailed, err)
	}

	// 4) Nothing left to explore → Unreachable
	if e.frontier.Len() == 0 {
		return e.finish(StatusUnreachable, nil)
	}

	// 5) Select and finalize the next parent
	next, err := e.frontier.ExtractMin()
	if err != nil {
		return e.finish(StatusFailed, err)
	}
	e.finalize(next)
	e.current = next
	e.iterations++

	if e.opts.InvariantChecks {
		if err = e.verify(); err != nil {
			return e.finish(StatusFailed, err)
		}
	}

	return StatusRunning, nil
}

// Run steps the search until it terminates.
//
// Returns:
//   - Found, Unreachable: nil error.
//   - Aborted: an error wrapping ErrAborted.
//   - Failed: an error wrapping ErrInvariantViolation.
func (e *Engine) Run() (Result, error) {
	return e.RunContext(context.Background())
}

// RunContext is Run with cancellation checked between steps. A cancelled
// context returns the current (running) Result and ctx.Err().
func (e *Engine) RunContext(ctx context.Context) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return e.Result(), err
		}
		status, err := e.Step()
		if status.Terminal() {
			return e.Result(), err
		}
	}
}

// expand relaxes every legal neighbor of parent.
func (e *Engine) expand(parent int) error {
	pc := e.g.Coordinate(parent)
	pg := e.state[parent].g

	for c := range e.g.Neighborhood(pc).All() {
		// 1) Skip the parent itself and closed cells
		if c == pc {
			continue
		}
		id := e.g.Index(c)
		st := &e.state[id]
		if st.finalized {
			continue
		}

		// 2) Skip obstacles and steps forbidden by connectivity or corner rules
		diagonal, ok := e.g.Step(pc, c, e.opts.Connectivity, e.opts.CornerCutting)
		if !ok {
			continue
		}
		candidate := e.opts.Costs.G(pg, e.opts.Costs.Step(diagonal))

		// 3) Rediscovered: relax when strictly cheaper, f recomputed eagerly
		if st.discovered {
			if candidate >= st.g {
				continue
			}
			st.g = candidate
			st.f = F(st.g, st.h)
			st.parent = parent
			if err := e.frontier.DecreaseCost(id, st.f, st.h); err != nil {
				return fmt.Errorf("relax %v: %w", c, err)
			}
			e.relaxations++
			if e.opts.Hooks.OnRelax != nil {
				e.opts.Hooks.OnRelax(id)
			}
			continue
		}

		// 4) Undiscovered: h computed once, then insert
		st.g = candidate
		st.h = e.heuristic(id)
		st.f = F(st.g, st.h)
		st.parent = parent
		st.discovered = true
		if err := e.frontier.Insert(id, st.f, st.h); err != nil {
			return fmt.Errorf("discover %v: %w", c, err)
		}
		e.discovered++
		if e.opts.Hooks.OnDiscover != nil {
			e.opts.Hooks.OnDiscover(id)
		}
	}

	return nil
}

// finalize closes id.
func (e *Engine) finalize(id int) {
	st := &e.state[id]
	st.finalized = true
	if ce := e.log.Check(zap.DebugLevel, "cell finalized"); ce != nil {
		c := e.g.Coordinate(id)
		ce.Write(
			zap.Int("cell", id),
			zap.Int("row", c.Row),
			zap.Int("col", c.Col),
			zap.Int("g", st.g),
			zap.Int("h", st.h),
			zap.Int("f", st.f),
			zap.Int("frontier_len", e.frontier.Len()),
		)
	}
	if e.opts.Hooks.OnFinalize != nil {
		e.opts.Hooks.OnFinalize(id)
	}
}

// finish records the terminal status, builds the Result and reports it.
func (e *Engine) finish(status Status, err error) (Status, error) {
	var path []int
	if status == StatusFound {
		var rerr error
		if path, rerr = e.Reconstruct(); rerr != nil {
			status, err, path = StatusFailed, rerr, nil
		} else {
			slices.Reverse(path)
			for _, id := range path {
				e.state[id].onPath = true
			}
		}
	}

	e.status, e.err = status, err
	e.result = Result{
		Status:      status,
		Path:        path,
		Iterations:  e.iterations,
		Discovered:  e.discovered,
		Relaxations: e.relaxations,
		RunID:       e.runID,
	}
	if status == StatusFound {
		e.result.Cost = e.state[e.goal].g
	}

	fields := []zap.Field{
		zap.Stringer("status", status),
		zap.Int("iterations", e.iterations),
		zap.Int("discovered", e.discovered),
		zap.Int("relaxations", e.relaxations),
	}
	switch status {
	case StatusFound:
		e.log.Info("search finished", append(fields, zap.Int("cost", e.result.Cost), zap.Int("path_len", len(path)))...)
	case StatusAborted:
		e.log.Warn("search aborted", append(fields, zap.Int("max_iterations", e.opts.MaxIterations))...)
	case StatusFailed:
		e.log.Error("search failed", append(fields, zap.Error(err))...)
	default:
		e.log.Info("search finished", fields...)
	}

	if e.opts.Hooks.OnFinish != nil {
		e.opts.Hooks.OnFinish(e.Result())
	}
	return status, err
}

// heuristic returns the remaining-cost estimate from id to the goal.
func (e *Engine) heuristic(id int) int {
	return e.opts.Costs.Heuristic(e.g.Coordinate(id), e.g.Coordinate(e.goal), e.opts.Connectivity)
}

// Result returns the outcome so far. Before termination only the counters
// and RunID are meaningful and Status is StatusRunning.
func (e *Engine) Result() Result {
	if !e.status.Terminal() {
		return Result{
			Status:      StatusRunning,
			Iterations:  e.iterations,
			Discovered:  e.discovered,
			Relaxations: e.relaxations,
			RunID:       e.runID,
		}
	}
	r := e.result
	r.Path = slices.Clone(e.result.Path)
	return r
}

// Status returns the current run status.
func (e *Engine) Status() Status { return e.status }

// Err returns the error that terminated the run, if any.
func (e *Engine) Err() error { return e.err }

// Iterations returns the number of cells finalized after the start cell.
func (e *Engine) Iterations() int { return e.iterations }

// Current returns the id of the most recently finalized cell.
func (e *Engine) Current() int { return e.current }

// Start returns the start cell id.
func (e *Engine) Start() int { return e.start }

// Goal returns the goal cell id.
func (e *Engine) Goal() int { return e.goal }

// Grid returns the searched grid.
func (e *Engine) Grid() *grid.Grid { return e.g }

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.g.Rows() }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.g.Cols() }

// RunID returns the identifier of the current run.
func (e *Engine) RunID() string { return e.runID }

// FrontierLen returns the number of open cells.
func (e *Engine) FrontierLen() int { return e.frontier.Len() }

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// View returns the static and search state of the cell at c.
// An out-of-bounds coordinate yields a zero view with ID and Parent set to -1.
func (e *Engine) View(c grid.Coord) CellView {
	if !e.g.InBounds(c) {
		return CellView{Cell: grid.Cell{ID: -1, Row: c.Row, Col: c.Col}, Parent: -1}
	}
	return e.ViewID(e.g.Index(c))
}

// ViewID returns the static and search state of cell id.
func (e *Engine) ViewID(id int) CellView {
	if id < 0 || id >= len(e.state) {
		return CellView{Cell: grid.Cell{ID: -1}, Parent: -1}
	}
	st := e.state[id]
	return CellView{
		Cell:       e.g.Cell(id),
		Start:      id == e.start,
		Goal:       id == e.goal,
		Discovered: st.discovered,
		Open:       e.frontier.Contains(id),
		Finalized:  st.finalized,
		OnPath:     st.onPath,
		G:          st.g,
		H:          st.h,
		F:          st.f,
		Parent:     st.parent,
	}
}
