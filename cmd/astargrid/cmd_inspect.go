package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astargrid/grid"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the configured grid, boundary codes, obstacle count and free-space regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.cfg.BuildGrid()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			start, goal := a.cfg.Start(), a.cfg.Goal()

			fmt.Fprint(out, g.String())
			fmt.Fprintln(out, "boundary codes:")
			for r := range g.Rows() {
				for c := range g.Cols() {
					fmt.Fprintf(out, "%d", g.Cell(g.Index(grid.Coord{Row: r, Col: c})).Boundary)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "size=%dx%d obstacles=%d\n", g.Rows(), g.Cols(), g.Obstacles())
			fmt.Fprintf(out, "start=%v (%s) goal=%v (%s)\n",
				start, g.Cell(g.Index(start)).Boundary, goal, g.Cell(g.Index(goal)).Boundary)

			conn := a.cfg.Connectivity()
			labels := g.RegionLabels(conn)
			fmt.Fprintf(out, "regions(%s)=%d connected=%t\n",
				conn, len(g.Regions(conn)), labels[g.Index(start)] == labels[g.Index(goal)])
			return nil
		},
	}
}
