package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrysly/wildfire-VIP/verify"
)

func newVerifyCmd(opts *rootOpts) *cobra.Command {
	var (
		maxViolations int
		tol           float64
		only          []string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Audit every face, cell and edge of a grid",
		Long: `verify builds the grid and checks its topology invariants:
face/edge shapes, index round trips, incidence relations in both
directions, centers, boundary predicates and parallel traversal.
It exits non-zero when any invariant is violated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxViolations < 0 || tol < 0 {
				return fmt.Errorf("--max-violations and --tolerance must be >= 0")
			}
			_, mg, err := opts.buildGrid(cmd)
			if err != nil {
				return err
			}
			vopts := []verify.Option{verify.WithMaxViolations(maxViolations), verify.WithTolerance(tol)}
			if len(only) > 0 {
				vopts = append(vopts, verify.Only(only...))
			}

			rep, err := verify.Run(cmd.Context(), mg, vopts...)
			out := cmd.OutOrStdout()
			for _, c := range rep.Checks {
				fmt.Fprintf(out, "%-10s items=%-10d violations=%d\n", c.Name, c.Items, c.Violations)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&maxViolations, "max-violations", 100, "stop after this many violations (0 = unlimited)")
	f.Float64Var(&tol, "tolerance", verify.DefaultTolerance, "position tolerance")
	f.StringSliceVar(&only, "only", nil, "run only these checks (shape, faces, cells, edges, traversal)")

	return cmd
}
