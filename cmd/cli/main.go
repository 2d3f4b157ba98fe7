// Package main is the entry point for the vm-pricing CLI.
package main

import (
	"os"

	"vm-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
