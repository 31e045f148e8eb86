// Command astargrid runs step-wise A* searches over 2-D grids.
//
// Usage:
//
//	astargrid run     [--plain] [--verify] [--costs f|g|h] [--metrics-file path]
//	astargrid step    interactive stepping (space/enter: step, r: run, x: reset, q: quit)
//	astargrid inspect print the grid, its obstacles and free-space regions
//
// Configuration comes from --config (YAML), ASTARGRID_* environment
// variables and built-in defaults, in that order of precedence from last
// to first.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
