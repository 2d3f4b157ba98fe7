// Package cmd - lookup command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vm-pricing/clouds/azure"
	"vm-pricing/core/pricing"
	"vm-pricing/internal/config"
)

var lookupRegion string

var lookupCmd = &cobra.Command{
	Use:   "lookup <node-type>",
	Short: "Look up hourly and per-DBU pricing for a node type",
	Long: `Look up live pricing for a Databricks node type in a region.

Prints the priced node as JSON, with all monetary values as decimal
strings. Exits with status 1 when the node type is unknown or has no
on-demand price in the region.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupRegion, "region", "r", "eastus2", "Azure region to price against")
}

func runLookup(cmd *cobra.Command, args []string) error {
	nodeType := args[0]

	client := azure.NewRetailClient(config.Get().Pricing)
	lookup := pricing.NewLookup(client)

	info, err := lookup.Price(context.Background(), lookupRegion, nodeType)
	if err != nil {
		return err
	}
	if info == nil {
		fmt.Fprintf(os.Stderr, "no pricing found for %s in %s\n", nodeType, lookupRegion)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
