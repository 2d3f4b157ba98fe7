// Package cmd provides the CLI commands for vm-pricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vm-pricing/internal/config"
	"vm-pricing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vm-pricing",
	Short: "Look up VM and DBU pricing for Databricks node types",
	Long: `vm-pricing resolves live hourly prices for Databricks node types
from the Azure Retail Prices API and derives per-DBU prices for
every Photon tier.

Examples:
  vm-pricing lookup --region eastus2 Standard_DS3_v2
  vm-pricing nodes
  vm-pricing regions`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vm-pricing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vm-pricing version 0.1.0")
	},
}
