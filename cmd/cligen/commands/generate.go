package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cligen/config"
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/logger"
	"github.com/teranos/cligen/render"
	"github.com/teranos/cligen/watch"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <descriptor>",
	Short: "Generate a command-line entry module from a descriptor",
	Long: `Generate a TypeScript entry module that parses process arguments with
yargs and calls the described function.

The descriptor (YAML, TOML or JSON) lists the function's name, description,
positionals, options and the files it is imported from.

Settings are layered: built-in defaults < ~/.cligen/config.toml < cligen.toml
< CLIGEN_* environment variables < flags.

Examples:
  cligen generate greet.yaml                   # writes greet.cli.ts next to it
  cligen generate greet.yaml -o bin/greet.ts   # custom output path
  cligen generate greet.yaml --format js       # strip types with esbuild
  cligen generate greet.yaml --stdin -o - | node --input-type=module
  cligen generate greet.yaml --runnable --args "--loud world"
  cligen generate greet.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	genOutput string
	genStdin  bool
	genArgs   string
	genFormat string
	genWatch  bool
)

func init() {
	f := GenerateCmd.Flags()
	f.StringVarP(&genOutput, "output", "o", "", "Output file, - for stdout (default: <name>.cli.ts next to the descriptor)")
	f.BoolVar(&genStdin, "stdin", false, "Inline the entry file and import the library by absolute path")
	f.StringVar(&genArgs, "args", "", "Shell-quoted arguments baked into the direct invocation")
	f.StringVar(&genFormat, "format", "", "Output format: ts or js (default from config)")
	f.BoolVar(&genWatch, "watch", false, "Regenerate when the descriptor or entry file changes")
	registerRenderFlags(GenerateCmd)
}

// registerRenderFlags adds the flags that map onto render options.
func registerRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("runnable", false, "Call the wrapper at the end of the module")
	f.Bool("async", false, "Declare the wrapper async")
	f.Bool("strict", true, "Emit .strict()")
	f.Bool("help-cmd", true, "Emit .help()")
	f.Bool("help-alias", true, `Emit .alias("help", "h")`)
	f.Bool("version-cmd", true, "Emit .version()")
	f.String("lib", "", "Module specifier of the argument-parsing library")
	f.String("function-name", "", "Name of the exported wrapper function")
	f.Bool("header", true, "Prepend the generated-code header")
}

// renderOverrides collects the render flags the user actually set.
func renderOverrides(cmd *cobra.Command) render.Overrides {
	f := cmd.Flags()
	var o render.Overrides

	boolFlag := func(name string) *bool {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetBool(name)
		return &v
	}
	stringFlag := func(name string) *string {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetString(name)
		return &v
	}

	o.Runnable = boolFlag("runnable")
	o.AsyncFunction = boolFlag("async")
	o.Strict = boolFlag("strict")
	o.Help = boolFlag("help-cmd")
	o.HelpAlias = boolFlag("help-alias")
	o.Version = boolFlag("version-cmd")
	o.Lib = stringFlag("lib")
	o.FunctionName = stringFlag("function-name")
	return o
}

func headerFlag(cmd *cobra.Command) *bool {
	if !cmd.Flags().Changed("header") {
		return nil
	}
	v, _ := cmd.Flags().GetBool("header")
	return &v
}

// parseArgs splits --args. An unset flag yields nil so the wrapper falls back
// to process arguments; an empty but set flag yields an empty list.
func parseArgs(cmd *cobra.Command, raw string) ([]string, error) {
	if !cmd.Flags().Changed("args") {
		return nil, nil
	}
	words, err := shellquote.Split(raw)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "invalid --args %q", raw), errors.ErrInvalidInput)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	bakedArgs, err := parseArgs(cmd, genArgs)
	if err != nil {
		return err
	}

	req := generateRequest{
		Descriptor: args[0],
		Output:     genOutput,
		Format:     genFormat,
		Header:     headerFlag(cmd),
		Overrides:  renderOverrides(cmd),
		Context:    render.Context{Stdin: genStdin, Args: bakedArgs},
		Config:     loaded.Config,
	}

	gen, err := generateOnce(cmd, req)
	if err != nil {
		return err
	}
	if !genWatch {
		return nil
	}

	files := append([]string{gen.Descriptor.Path}, loaded.Files...)
	if gen.Entry != "" {
		files = append(files, gen.Entry)
	}
	debounce := time.Duration(loaded.Config.Watch.DebounceMS) * time.Millisecond

	w, err := watch.New(files, debounce)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printfln("Watching %d file(s), press Ctrl+C to stop", len(files))
	return w.Run(ctx, func(ctx context.Context, changed string) error {
		if logger.ShouldOutput(verbosityOf(cmd), logger.OutputWatchEvent) {
			pterm.Info.Printfln("Changed: %s", changed)
		}
		if reloaded, err := loadConfig(configFile); err == nil {
			req.Config = reloaded.Config
		} else {
			pterm.Warning.Printfln("Keeping previous config: %v", err)
		}
		_, err := generateOnce(cmd, req)
		if err != nil {
			pterm.Error.Printfln("%v", err)
		}
		return err
	})
}

func generateOnce(cmd *cobra.Command, req generateRequest) (*generated, error) {
	verbosity := verbosityOf(cmd)
	start := time.Now()

	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		cfg := req.Config
		if cfg == nil {
			cfg = config.Default()
		}
		opts := render.DefaultOptions().Merge(cfg.Overrides().Then(req.Overrides))
		pterm.Info.Printfln("Render options: %+v", opts)
	}

	gen, err := generate(req)
	if err != nil {
		return nil, err
	}
	if logger.ShouldOutput(verbosity, logger.OutputProgress) {
		pterm.Info.Printfln("Loaded %s (%s)", gen.Descriptor.Path, gen.Descriptor.Name)
	}
	if logger.ShouldOutput(verbosity, logger.OutputSourceDump) {
		fmt.Fprint(cmd.ErrOrStderr(), gen.Content)
	}

	if err := gen.write(cmd.OutOrStdout()); err != nil {
		return nil, errors.Wrapf(err, "write %s", gen.Output)
	}
	if gen.Output == stdoutPath {
		return gen, nil
	}

	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Success.Printfln("Generated %s (%s)", gen.Output, time.Since(start).Round(time.Millisecond))
	} else {
		pterm.Success.Printfln("Generated %s", gen.Output)
	}
	return gen, nil
}
