// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on obstacle grids.
//
// Options:
//
//	– Source:        starting cell (required; must be in bounds and free).
//	– Costs:         adjacent and diagonal step costs (default 10/14).
//	– Connectivity:  grid.Conn8 (default) or grid.Conn4.
//	– CornerCutting: allow diagonal steps between blocked cells (default true).
//	– ReturnPath:    if true, return the predecessor slice.
//	– MaxDistance:   optional cap on distances to explore; cells beyond this are skipped.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/astargrid/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source cell was provided.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrSourceBlocked indicates that the source cell is an obstacle.
	ErrSourceBlocked = errors.New("dijkstra: source cell is an obstacle")

	// ErrBadCosts indicates non-positive step costs.
	ErrBadCosts = errors.New("dijkstra: step costs must be positive")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for cells that cannot be reached.
const Unreachable = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source        – starting cell (must be in bounds and free).
// Adjacent      – cost of an orthogonal step (> 0).
// Diagonal      – cost of a diagonal step (> 0).
// Connectivity  – movement model.
// CornerCutting – diagonal steps may pass between blocked orthogonal cells.
// ReturnPath    – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance   – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source        grid.Coord
	Adjacent      int64
	Diagonal      int64
	Connectivity  grid.Connectivity
	CornerCutting bool
	ReturnPath    bool
	MaxDistance   int64

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be called.
func Source(c grid.Coord) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithCosts sets the adjacent and diagonal step costs.
func WithCosts(adjacent, diagonal int64) Option {
	return func(o *Options) {
		o.Adjacent = adjacent
		o.Diagonal = diagonal
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

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Panics on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:        unset (Dijkstra returns ErrNoSource).
//   - Costs:         10 / 14.
//   - Connectivity:  grid.Conn8.
//   - CornerCutting: true.
//   - ReturnPath:    false.
//   - MaxDistance:   math.MaxInt64 (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		Adjacent:      10,
		Diagonal:      14,
		Connectivity:  grid.Conn8,
		CornerCutting: true,
		MaxDistance:   math.MaxInt64,
	}
}
