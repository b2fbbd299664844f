// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkpred/embedding"
	"github.com/katalvlaran/linkpred/evaluate"
	"github.com/katalvlaran/linkpred/topology"
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List strategies, embedding families and samplers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tNAME\tCALIBRATED")
			for _, name := range topology.Models.Names() {
				fmt.Fprintf(tw, "%s\t%s\t-\n", topology.Family, name)
			}
			for _, name := range embedding.KnownFamilies() {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", embedding.Family, name, embedding.IsEligible(name))
			}
			for _, name := range evaluate.Samplers.Names() {
				fmt.Fprintf(tw, "%s\t%s\t-\n", evaluate.Samplers.Family(), name)
			}

			return tw.Flush()
		},
	}
}
