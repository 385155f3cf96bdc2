package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/ingest"
)

func newGenerateCmd() *cobra.Command {
	var (
		topology, out, prefix string
		params                builder.Params
		seed                  int64
		minW, maxW            int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph of a given shape",
		Long: "Generate a graph (path, cycle, complete, star, wheel, grid or random) " +
			"with uniformly drawn integer weights and write it as text or YAML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minW < 0 || maxW < minW {
				return fmt.Errorf("weights: need 0 <= min-weight <= max-weight, got %d..%d", minW, maxW)
			}
			c, err := builder.ParseTopology(topology, params)
			if err != nil {
				return err
			}
			opts := []builder.Option{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)),
			}
			if prefix != "" {
				opts = append(opts, builder.WithSymbNumb(prefix))
			}
			g, err := builder.Build(c, opts...)
			if err != nil {
				return err
			}

			if out == "-" {
				return ingest.Write(cmd.OutOrStdout(), g)
			}
			if err = ingest.SaveFile(out, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d vertices, %d edges\n", out, g.Order(), g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&topology, "topology", "random", "path, cycle, complete, star, wheel, grid or random")
	cmd.Flags().IntVar(&params.N, "n", 8, "vertex count")
	cmd.Flags().IntVar(&params.Rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&params.Cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&params.P, "p", 0.3, "edge probability for random")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().Int64Var(&minW, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&maxW, "max-weight", 9, "largest edge weight")
	cmd.Flags().StringVar(&prefix, "prefix", "", "label vertices <prefix>0, <prefix>1, … instead of A, B, …")
	cmd.Flags().StringVar(&out, "out", "-", "output file (.txt or .yaml), - for stdout")

	return cmd
}
