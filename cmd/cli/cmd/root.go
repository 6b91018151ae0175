// Package cmd provides the CLI commands for rate.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	adapter "datarate/adapters/cli"
	"datarate/core/units"
	"datarate/internal/logging"
)

// Version is the tool version reported by -v/--version
const Version = "0.1.0"

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:     "rate <number> <unit> / <period>",
	Short:   "Convert a data rate across time periods",
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runConvert,

	// Parse failures already carry the accepted values, dumping the usage
	// text on top would drown them out.
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.SetVersionTemplate("rate {{.Version}}\n")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), usageText())
	})
	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		fmt.Fprint(cmd.OutOrStderr(), usageText())
		return nil
	})
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = logging.Initialize(cfg)
}

func usageText() string {
	return fmt.Sprintf(`Usage: rate <number> <unit> / <period>
       <number>: integer or float (no scientific notation)
       <unit>  : %s
       <period>: %s
`, units.AcceptedUnits(), units.AcceptedPeriods())
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	a := adapter.NewCLIAdapter()
	a.SetOutput(cmd.OutOrStdout())
	return a.Run(strings.Join(args, " "))
}
