package astar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/astargrid/grid"
)

// Error categories. Every specific sentinel below wraps exactly one of these,
// so callers may branch on either level with errors.Is.
var (
	// ErrConfiguration indicates an invalid search setup, detected before the run starts.
	ErrConfiguration = errors.New("astar: configuration error")

	// ErrAborted indicates that the iteration cap was reached before the search ended.
	ErrAborted = errors.New("astar: search aborted")

	// ErrInvariantViolation indicates a logic defect inside the search.
	ErrInvariantViolation = errors.New("astar: internal invariant violation")
)

// Configuration errors.
var (
	ErrNilGrid      = fmt.Errorf("%w: grid is nil", ErrConfiguration)
	ErrOutOfBounds  = fmt.Errorf("%w: coordinate out of grid bounds", ErrConfiguration)
	ErrStartBlocked = fmt.Errorf("%w: start cell is an obstacle", ErrConfiguration)
	ErrGoalBlocked  = fmt.Errorf("%w: goal cell is an obstacle", ErrConfiguration)
	ErrBadCosts     = fmt.Errorf("%w: step costs must satisfy 0 < adjacent <= diagonal <= 2*adjacent", ErrConfiguration)
)

// Invariant violations.
var (
	ErrFrontierEmpty = fmt.Errorf("%w: frontier empty", ErrInvariantViolation)
	ErrAlreadyMember = fmt.Errorf("%w: cell already on frontier", ErrInvariantViolation)
	ErrNotMember     = fmt.Errorf("%w: cell not on frontier", ErrInvariantViolation)
	ErrNotDecreasing = fmt.Errorf("%w: decrease-cost with a non-decreasing key", ErrInvariantViolation)
	ErrBrokenPath    = fmt.Errorf("%w: broken parent chain", ErrInvariantViolation)
)

// ErrNotFound is returned when a path is requested from a search that has not reached the goal.
var ErrNotFound = errors.New("astar: no path found")

// Status is the state of one search run.
type Status int

const (
	// StatusRunning means the search has not terminated yet.
	StatusRunning Status = iota
	// StatusFound means the goal was finalized; a path is available.
	StatusFound
	// StatusUnreachable means the frontier emptied without reaching the goal.
	StatusUnreachable
	// StatusAborted means the iteration cap was reached.
	StatusAborted
	// StatusFailed means an invariant violation stopped the run.
	StatusFailed
)

var statusNames = [...]string{"running", "found", "unreachable", "aborted", "failed"}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool { return s != StatusRunning }

// FrontierKind selects the open-set implementation.
type FrontierKind int

const (
	// FrontierHeap is an indexable binary heap (O(log n) operations).
	FrontierHeap FrontierKind = iota
	// FrontierLinear rescans all members on extract-min (O(n)); for small grids.
	FrontierLinear
)

// String implements fmt.Stringer.
func (k FrontierKind) String() string {
	if k == FrontierLinear {
		return "linear"
	}
	return "heap"
}

// DefaultMaxIterations is the default iteration cap.
const DefaultMaxIterations = 10000

// Hooks are optional callbacks invoked synchronously during a search.
// Any nil hook is skipped. Hooks must not call back into the Engine's
// mutating methods.
type Hooks struct {
	// OnDiscover is called when a cell is inserted into the frontier.
	OnDiscover func(id int)
	// OnRelax is called when an open cell receives a cheaper path.
	OnRelax func(id int)
	// OnFinalize is called when a cell is finalized (closed), including the start cell.
	OnFinalize func(id int)
	// OnFinish is called once per run when it reaches a terminal status.
	OnFinish func(res Result)
}

// Options configures an Engine.
//
// Costs             – adjacent and diagonal step costs (default 10/14).
// Connectivity      – grid.Conn8 (default) or grid.Conn4.
// CornerCutting     – allow diagonal steps between blocked cells (default true).
// MaxIterations     – iteration cap (default DefaultMaxIterations).
// Frontier          – open-set implementation (default FrontierHeap).
// Logger            – structured logger (default zap.NewNop()).
// Hooks             – optional callbacks.
// InvariantChecks   – verify engine/frontier consistency after every step (O(n) per step).
// ReachabilityCheck – report Unreachable up front when start and goal lie in different free-space regions.
type Options struct {
	Costs             CostModel
	Connectivity      grid.Connectivity
	CornerCutting     bool
	MaxIterations     int
	Frontier          FrontierKind
	Logger            *zap.Logger
	Hooks             Hooks
	InvariantChecks   bool
	ReachabilityCheck bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Costs:         DefaultCosts(),
		Connectivity:  grid.Conn8,
		CornerCutting: true,
		MaxIterations: DefaultMaxIterations,
		Frontier:      FrontierHeap,
		Logger:        zap.NewNop(),
	}
}

// WithCosts sets the adjacent and diagonal step costs.
// The pair is validated by New (ErrBadCosts).
func WithCosts(adjacent, diagonal int) Option {
	return func(o *Options) {
		o.Costs = CostModel{Adjacent: adjacent, Diagonal: diagonal}
	}
}

// WithConnectivity selects 4- or 8-directional movement.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = conn
	}
}

// WithCornerCutting sets the diagonal corner-cutting policy.
func WithCornerCutting(allow bool) Option {
	return func(o *Options) {
		o.CornerCutting = allow
	}
}

// WithMaxIterations sets the iteration cap. Panics if n is not positive.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("astar: WithMaxIterations requires a positive cap")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithLogger sets the structured logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks installs search callbacks.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

// WithInvariantChecks enables a full consistency check after every step.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.InvariantChecks = true
	}
}

// WithReachabilityCheck enables the free-space region pre-check.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// Result is the outcome of a search run.
type Result struct {
	Status      Status
	Path        []int // cell ids, start → goal; nil unless Status == StatusFound
	Cost        int   // g-cost of the goal; 0 unless Status == StatusFound
	Iterations  int   // cells finalized after the start cell
	Discovered  int   // frontier insertions
	Relaxations int   // successful decrease-cost operations
	RunID       string
}

// CellView is the read-only query surface for one cell: the static
// grid.Cell plus the current search state.
type CellView struct {
	grid.Cell
	Start, Goal bool
	Discovered  bool // reached at least once (h is known)
	Open        bool // on the frontier
	Finalized   bool // expanded or selected as parent; closed
	OnPath      bool // on the reconstructed path (after Run found it)
	G, H, F     int
	Parent      int // parent cell id, -1 if none
}
