package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sortbench/internal/algorithms"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the benchmarked algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOMPLEXITY\tSTABLE")
			for _, e := range algorithms.Registry() {
				stable := "no"
				if e.Stable {
					stable = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Complexity, stable)
			}
			return w.Flush()
		},
	}
}
