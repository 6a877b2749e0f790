package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/cligen/cmd/cligen/commands"
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cligen",
	Short: "cligen - generate command-line entry modules for TypeScript functions",
	Long: `cligen - generate command-line entry modules for TypeScript functions.

Given a descriptor of a function's signature, cligen writes a module that
parses process arguments with yargs and calls the function with them.

Available commands:
  generate - Generate an entry module from a descriptor
  check    - Verify a generated module is up to date
  config   - Show, initialise and validate configuration
  version  - Show version information

Examples:
  cligen generate greet.yaml
  cligen check greet.yaml
  cligen config show --sources`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(commands.JSONLogs(), verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	commands.RegisterPersistentFlags(rootCmd)

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err == nil {
		return
	}

	if !errors.Is(err, commands.ErrOutOfDate) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
	}
	os.Exit(1)
}
