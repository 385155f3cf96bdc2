package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/session"
)

func newTableCmd() *cobra.Command {
	var source string
	var down []string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print distances, predecessors and hop counts from one source",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.log.Sync() //nolint:errcheck

			c := session.NewController(a.graph, session.WithLogger(a.log.Named("session")))
			for _, n := range down {
				if err = c.Down(n); err != nil {
					return err
				}
			}
			rows, err := c.Table(source)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VERTEX\tDIST\tPREV\tHOPS")
			for _, r := range rows {
				dist, prev, hops := "inf", "-", "-"
				if r.Reachable {
					dist = strconv.FormatInt(r.Dist, 10)
				}
				if r.Hops != bfs.Unreached {
					hops = strconv.Itoa(r.Hops)
				}
				if r.Prev != "" {
					prev = r.Prev
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Label, dist, prev, hops)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source vertex (required)")
	cmd.Flags().StringSliceVar(&down, "down", nil, "vertices to take down first")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
