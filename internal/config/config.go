// Package config holds the astargrid command configuration: grid size,
// search endpoints and costs, obstacle layout and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
	"github.com/katalvlaran/astargrid/layout"
)

// Config is the full command configuration.
type Config struct {
	Grid   GridConfig   `koanf:"grid"`
	Search SearchConfig `koanf:"search"`
	Layout LayoutConfig `koanf:"layout"`
	Log    LogConfig    `koanf:"log"`
}

// GridConfig sizes the grid.
type GridConfig struct {
	Rows    int     `koanf:"rows" validate:"gte=1,lte=4096"`
	Cols    int     `koanf:"cols" validate:"gte=1,lte=4096"`
	Spacing float64 `koanf:"spacing" validate:"gt=0"`
}

// SearchConfig selects endpoints, costs and engine behavior.
type SearchConfig struct {
	StartRow      int    `koanf:"start_row" validate:"gte=0"`
	StartCol      int    `koanf:"start_col" validate:"gte=0"`
	GoalRow       int    `koanf:"goal_row" validate:"gte=0"`
	GoalCol       int    `koanf:"goal_col" validate:"gte=0"`
	Adjacent      int    `koanf:"adjacent" validate:"gt=0"`
	Diagonal      int    `koanf:"diagonal" validate:"gt=0"`
	Connectivity  string `koanf:"connectivity" validate:"oneof=conn4 conn8"`
	CornerCutting bool   `koanf:"corner_cutting"`
	MaxIterations int    `koanf:"max_iterations" validate:"gt=0"`
	Frontier      string `koanf:"frontier" validate:"oneof=heap linear"`
}

// LayoutConfig picks an obstacle layout by name.
type LayoutConfig struct {
	Name    string  `koanf:"name" validate:"required"`
	Density float64 `koanf:"density" validate:"gte=0,lte=1"`
	Seed    int64   `koanf:"seed"`
	WallCol int     `koanf:"wall_col" validate:"gte=0"`
	Gaps    []int   `koanf:"gaps"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns the reference scenario: a 10×10 grid, start (9,0),
// goal (0,4), costs 10/14 and the checker layout.
func Default() Config {
	return Config{
		Grid: GridConfig{Rows: 10, Cols: 10, Spacing: 1},
		Search: SearchConfig{
			StartRow:      9,
			StartCol:      0,
			GoalRow:       0,
			GoalCol:       4,
			Adjacent:      10,
			Diagonal:      14,
			Connectivity:  grid.Conn8.String(),
			CornerCutting: true,
			MaxIterations: astar.DefaultMaxIterations,
			Frontier:      astar.FrontierHeap.String(),
		},
		Layout: LayoutConfig{Name: "checker", Density: 0.25, Seed: 1},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

var validate = validator.New()

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks field tags, then cross-field constraints: endpoints
// inside the grid, a diagonal cost in [adjacent, 2*adjacent] and a known
// layout name.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Search.StartRow >= c.Grid.Rows || c.Search.StartCol >= c.Grid.Cols {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalid, c.Start(), c.Grid.Rows, c.Grid.Cols)
	}
	if c.Search.GoalRow >= c.Grid.Rows || c.Search.GoalCol >= c.Grid.Cols {
		return fmt.Errorf("%w: goal %v outside %dx%d grid", ErrInvalid, c.Goal(), c.Grid.Rows, c.Grid.Cols)
	}
	if err := c.Costs().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := layout.ByName(c.Layout.Name, c.layoutParams()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Start returns the start coordinate.
func (c Config) Start() grid.Coord {
	return grid.Coord{Row: c.Search.StartRow, Col: c.Search.StartCol}
}

// Goal returns the goal coordinate.
func (c Config) Goal() grid.Coord {
	return grid.Coord{Row: c.Search.GoalRow, Col: c.Search.GoalCol}
}

// Costs returns the step cost model.
func (c Config) Costs() astar.CostModel {
	return astar.CostModel{Adjacent: c.Search.Adjacent, Diagonal: c.Search.Diagonal}
}

// Connectivity returns the movement model.
func (c Config) Connectivity() grid.Connectivity {
	if c.Search.Connectivity == grid.Conn4.String() {
		return grid.Conn4
	}
	return grid.Conn8
}

// EngineOptions translates the search section into engine options.
func (c Config) EngineOptions() []astar.Option {
	kind := astar.FrontierHeap
	if c.Search.Frontier == astar.FrontierLinear.String() {
		kind = astar.FrontierLinear
	}
	return []astar.Option{
		astar.WithCosts(c.Search.Adjacent, c.Search.Diagonal),
		astar.WithConnectivity(c.Connectivity()),
		astar.WithCornerCutting(c.Search.CornerCutting),
		astar.WithMaxIterations(c.Search.MaxIterations),
		astar.WithFrontier(kind),
	}
}

// BuildGrid creates the grid and applies the configured layout with the
// start and goal protected.
func (c Config) BuildGrid() (*grid.Grid, error) {
	g, err := grid.New(c.Grid.Rows, c.Grid.Cols, grid.WithSpacing(c.Grid.Spacing))
	if err != nil {
		return nil, err
	}
	l, err := layout.ByName(c.Layout.Name, c.layoutParams())
	if err != nil {
		return nil, err
	}
	opts := []layout.Option{
		layout.WithSeed(c.Layout.Seed),
		layout.WithProtected(c.Start(), c.Goal()),
	}
	if err := layout.Apply(g, opts, l); err != nil {
		return nil, err
	}
	return g, nil
}

func (c Config) layoutParams() layout.Params {
	return layout.Params{Density: c.Layout.Density, WallCol: c.Layout.WallCol, Gaps: c.Layout.Gaps}
}
