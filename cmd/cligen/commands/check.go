package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cligen/emit"
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/render"
)

// ErrOutOfDate marks a check failure so main can exit non-zero without
// printing a stack of wrapped errors.
var ErrOutOfDate = errors.New("generated file is out of date")

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <descriptor>",
	Short: "Verify a generated entry module is up to date",
	Long: `Regenerate the entry module in memory and compare it with the file on disk.
The version line of the header is ignored. Exits non-zero when the file is
missing or differs, which makes it suitable for CI.

Examples:
  cligen check greet.yaml
  cligen check greet.yaml -o bin/greet.ts --runnable`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var (
	checkOutput string
	checkFormat string
	checkStdin  bool
	checkArgs   string
)

func init() {
	f := CheckCmd.Flags()
	f.StringVarP(&checkOutput, "output", "o", "", "Generated file to compare (default: <name>.cli.ts next to the descriptor)")
	f.StringVar(&checkFormat, "format", "", "Output format the file was generated with")
	f.BoolVar(&checkStdin, "stdin", false, "The file was generated with --stdin")
	f.StringVar(&checkArgs, "args", "", "The --args the file was generated with")
	registerRenderFlags(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkOutput == stdoutPath {
		return errors.NewInvalidInputError("check needs a file, not stdout")
	}

	loaded, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	bakedArgs, err := parseArgs(cmd, checkArgs)
	if err != nil {
		return err
	}

	gen, err := generate(generateRequest{
		Descriptor: args[0],
		Output:     checkOutput,
		Format:     checkFormat,
		Header:     headerFlag(cmd),
		Overrides:  renderOverrides(cmd),
		Context:    render.Context{Stdin: checkStdin, Args: bakedArgs},
		Config:     loaded.Config,
	})
	if err != nil {
		return err
	}

	res, err := emit.Check(gen.Output, gen.Content)
	if err != nil {
		return err
	}

	switch {
	case res.UpToDate:
		pterm.Success.Printfln("%s is up to date", gen.Output)
		return nil
	case res.Missing:
		pterm.Error.Printfln("%s does not exist", gen.Output)
	default:
		pterm.Error.Printfln("%s differs at line %d", gen.Output, res.Line)
		pterm.Printfln("  want: %s", res.Expected)
		pterm.Printfln("  have: %s", res.Actual)
	}
	pterm.Info.Printfln("Run: cligen generate %s", args[0])
	return errors.Wrapf(ErrOutOfDate, "%s", gen.Output)
}
