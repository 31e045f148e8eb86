package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/dijkstra"
	"github.com/katalvlaran/astargrid/metrics"
	"github.com/katalvlaran/astargrid/render"
)

// errCostMismatch reports an A* cost that disagrees with Dijkstra.
var errCostMismatch = errors.New("astargrid: A* cost differs from Dijkstra distance")

type runFlags struct {
	plain       bool
	verify      bool
	costs       string
	metricsFile string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search to completion and print the explored grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, f)
		},
	}
	cmd.Flags().BoolVar(&f.plain, "plain", false, "render ASCII glyphs without colors")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check the path cost against Dijkstra")
	cmd.Flags().StringVar(&f.costs, "costs", "", "also print a cost table (f, g or h)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	return cmd
}

func (a *app) run(cmd *cobra.Command, f runFlags) error {
	field, err := parseField(f.costs)
	if err != nil {
		return err
	}

	var (
		hooks astar.Hooks
		reg   *prometheus.Registry
	)
	if f.metricsFile != "" {
		reg = prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		hooks = rec.Hooks()
	}

	e, err := a.newEngine(hooks)
	if err != nil {
		return err
	}
	res, runErr := e.RunContext(cmd.Context())

	out := cmd.OutOrStdout()
	if f.plain {
		fmt.Fprint(out, render.ASCII(e))
	} else {
		theme := render.DefaultTheme()
		fmt.Fprintln(out, render.Styled(e, theme))
		fmt.Fprintln(out, render.Legend(theme))
	}
	if f.costs != "" {
		fmt.Fprintf(out, "\n%s costs:\n%s", field, render.Costs(e, field))
	}
	printResult(out, e, res)

	if f.verify && res.Status.Terminal() {
		if err := a.verify(e, res); err != nil {
			return err
		}
		fmt.Fprintln(out, "verify: ok")
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return runErr
}

func printResult(w io.Writer, e *astar.Engine, res astar.Result) {
	fmt.Fprintf(w, "status=%s iterations=%d discovered=%d relaxations=%d\n",
		res.Status, res.Iterations, res.Discovered, res.Relaxations)
	if res.Status == astar.StatusFound {
		fmt.Fprintf(w, "cost=%d path=%s\n", res.Cost, formatPath(e.Grid(), res.Path))
	}
}

// verify compares the engine result with a Dijkstra sweep from the start.
func (a *app) verify(e *astar.Engine, res astar.Result) error {
	opts := e.Options()
	dist, _, err := dijkstra.Dijkstra(e.Grid(),
		dijkstra.Source(e.Grid().Coordinate(e.Start())),
		dijkstra.WithCosts(int64(opts.Costs.Adjacent), int64(opts.Costs.Diagonal)),
		dijkstra.WithConnectivity(opts.Connectivity),
		dijkstra.WithCornerCutting(opts.CornerCutting),
	)
	if err != nil {
		return err
	}

	want := dist[e.Goal()]
	switch {
	case res.Status == astar.StatusFound && want != int64(res.Cost):
		return fmt.Errorf("%w: astar=%d dijkstra=%d", errCostMismatch, res.Cost, want)
	case res.Status == astar.StatusUnreachable && want != dijkstra.Unreachable:
		return fmt.Errorf("%w: astar=unreachable dijkstra=%d", errCostMismatch, want)
	}
	a.log.Debug("verified against dijkstra", zap.Int64("distance", want))
	return nil
}

func parseField(s string) (render.Field, error) {
	switch s {
	case "", "f":
		return render.FieldF, nil
	case "g":
		return render.FieldG, nil
	case "h":
		return render.FieldH, nil
	}
	return render.FieldF, fmt.Errorf("unknown cost field %q: want f, g or h", s)
}
