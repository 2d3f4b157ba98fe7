// Package cmd - catalog listing commands
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vm-pricing/core/catalog"
	"vm-pricing/core/types"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List valid regions",
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := catalog.Regions()
		if err != nil {
			return err
		}
		for _, region := range regions[types.ProviderAzure] {
			fmt.Println(region)
		}
		return nil
	},
}

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List catalog node types",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := catalog.NodeTypes()
		if err != nil {
			return err
		}
		names, err := catalog.NodeTypeNames()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDBU/HR\tCORES\tMEMORY(GB)")
		for _, name := range names {
			node := nodes[name]
			fmt.Fprintf(w, "%s\t%g\t%d\t%d\n", name, node.DBUPerHr, node.CPUCores, node.Memory)
		}
		return w.Flush()
	},
}
