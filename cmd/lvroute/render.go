package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/render"
	"github.com/katalvlaran/lvroute/session"
)

func newRenderCmd() *cobra.Command {
	var source, dest, out string
	var size float64

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the graph with the route highlighted as a JSON scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.log.Sync() //nolint:errcheck

			c := session.NewController(a.graph, session.WithLogger(a.log.Named("session")))
			r, err := c.FindRoute(source, dest)
			if err != nil {
				return err
			}
			var hops []dijkstra.Hop
			if r.Reachable {
				hops = r.Path.Hops
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s to %s is unreachable. Cost is: inf\n", r.Source, r.Dest)
			}

			layout, err := a.layout(size, size)
			if err != nil {
				return err
			}
			scene, err := render.NewScene(a.graph, hops, layout, size, size)
			if err != nil {
				return err
			}
			if out == "-" {
				data, err := scene.ExportJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return scene.WriteJSON(out)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source vertex (required)")
	cmd.Flags().StringVar(&dest, "dest", "", "destination vertex (required)")
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout")
	cmd.Flags().Float64Var(&size, "size", 1000, "canvas width and height")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}
