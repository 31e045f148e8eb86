package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
	"github.com/katalvlaran/astargrid/internal/config"
	"github.com/katalvlaran/astargrid/internal/logging"
)

// app carries state shared by every subcommand once the root pre-run
// has loaded configuration and built the logger.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "astargrid",
		Short:             "Step-wise A* path search over 2-D grids",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "override log.format (json, console)")

	root.AddCommand(newRunCmd(a), newStepCmd(a), newInspectCmd(a))
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With(zap.String("cmd", cmd.Name()))
	return nil
}

// newEngine builds the configured grid and an engine over it.
func (a *app) newEngine(hooks astar.Hooks) (*astar.Engine, error) {
	g, err := a.cfg.BuildGrid()
	if err != nil {
		return nil, err
	}
	opts := append(a.cfg.EngineOptions(), astar.WithLogger(a.log), astar.WithHooks(hooks))
	return astar.New(g, a.cfg.Start(), a.cfg.Goal(), opts...)
}

// formatPath renders cell ids as "(r,c)(r,c)...".
func formatPath(g *grid.Grid, path []int) string {
	var sb strings.Builder
	for _, id := range path {
		sb.WriteString(g.Coordinate(id).String())
	}
	return sb.String()
}
