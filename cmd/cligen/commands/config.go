package commands

import (
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cligen/config"
	"github.com/teranos/cligen/display"
	"github.com/teranos/cligen/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cligen configuration",
	Long: `Display and manage cligen configuration.

Configuration sources (later overrides earlier):
1. Built-in defaults
2. User config (~/.cligen/config.toml)
3. Project config (cligen.toml, searched up from the working directory)
4. Environment variables (CLIGEN_* prefix, e.g. CLIGEN_RENDER_STRICT=false)
5. Command line flags

Examples:
  cligen config show                  # effective configuration as TOML
  cligen config show --format json
  cligen config show --sources        # where every value came from
  cligen config init                  # write ./cligen.toml with defaults
  cligen config validate`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default cligen.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var (
	showFormat  string
	showSources bool
	initForce   bool
)

func init() {
	configShowCmd.Flags().StringVar(&showFormat, "format", "toml", "Output format: toml, json, yaml")
	configShowCmd.Flags().BoolVar(&showSources, "sources", false, "Show the source of every setting")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file (kept as .back1)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if showSources {
		data := pterm.TableData{{"Key", "Value", "Source", "From"}}
		for _, s := range loaded.Settings() {
			data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render()
	}

	switch showFormat {
	case "json":
		return display.OutputJSON(out, loaded.Config)

	case "yaml":
		data, err := yaml.Marshal(loaded.Config)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# cligen configuration\n%s", data)

	case "toml":
		data, err := loaded.Config.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# cligen configuration\n%s", data)

	default:
		return errors.NewUnsupportedError("format %s (supported: toml, json, yaml)", showFormat)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigName
	if len(args) == 1 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", path)
	}

	if err := config.WriteDefault(abs, initForce); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", abs)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// Load validates; a failure carries the offending key.
	if _, err := loadConfig(configFile); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}
