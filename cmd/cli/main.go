// Package main is the entry point for the rate CLI.
package main

import (
	"os"

	"datarate/cmd/cli/cmd"
	"datarate/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
