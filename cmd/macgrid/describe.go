package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chrysly/wildfire-VIP/macgrid"
)

func newDescribeCmd(opts *rootOpts) *cobra.Command {
	var asTOML bool
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the derived face and edge shapes of a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, mg, err := opts.buildGrid(cmd)
			if err != nil {
				return err
			}
			if asTOML {
				return c.Encode(cmd.OutOrStdout())
			}
			describe(cmd.OutOrStdout(), mg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the effective configuration as TOML instead")

	return cmd
}

// describe writes one line per entity kind and axis.
func describe(w io.Writer, mg *macgrid.MacGrid) {
	d := mg.Dim()
	g := mg.Grid()
	fmt.Fprintf(w, "dim      %d\n", d)
	fmt.Fprintf(w, "dx       %g\n", g.Dx())
	fmt.Fprintf(w, "cells    %-12s %d\n", g.CellCounts().Format(d), g.NumberOfCells())
	fmt.Fprintf(w, "nodes    %-12s %d\n", g.NodeCounts().Format(d), g.NumberOfNodes())
	for axis := 0; axis < int(d); axis++ {
		fmt.Fprintf(w, "faces[%d] %-12s %d\n", axis, mg.FaceCounts(axis).Format(d), mg.NumberOfFaces(axis))
	}
	for axis := 0; axis < int(d); axis++ {
		fmt.Fprintf(w, "edges[%d] %-12s %d\n", axis, mg.EdgeCounts(axis).Format(d), mg.NumberOfEdges(axis))
	}
	fmt.Fprintf(w, "total    faces=%d edges=%d\n", mg.TotalFaces(), mg.TotalEdges())
}
