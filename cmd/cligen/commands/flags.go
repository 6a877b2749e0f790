package commands

import (
	"github.com/spf13/cobra"
)

// Flags shared by the root command.
var (
	configFile string
	jsonLogs   bool
)

// JSONLogs reports whether --json-logs was set.
func JSONLogs() bool { return jsonLogs }

// RegisterPersistentFlags adds the global flags to root.
func RegisterPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.cligen/config.toml and cligen.toml)")
	root.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
}

// verbosityOf returns the -v count for cmd.
func verbosityOf(cmd *cobra.Command) int {
	v, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return 0
	}
	return v
}
