package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "webutils",
	Short:   "A thin convenience layer over HTTP from the terminal",
	Version: version,
	Long: `Webutils wraps one-shot HTTP exchanges into structured response records:
verb commands for ad-hoc requests, a bench command for quick latency
percentiles, and a run command for YAML request suites.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called once by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(patchCmd)
	RootCmd.AddCommand(optionsCmd)
	RootCmd.AddCommand(traceCmd)
	RootCmd.AddCommand(benchCmd)
	RootCmd.AddCommand(runCmd)
}
