package commands

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/teranos/cligen/config"
	"github.com/teranos/cligen/emit"
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/logger"
	"github.com/teranos/cligen/render"
	"github.com/teranos/cligen/resolve"
	"github.com/teranos/cligen/transform"
	"github.com/teranos/cligen/version"
)

// stdoutPath as --output writes the module to standard output.
const stdoutPath = "-"

// generateRequest is everything one generation needs after flag parsing.
type generateRequest struct {
	Descriptor string
	Output     string
	Format     string // empty uses the config
	Header     *bool  // nil uses the config
	Overrides  render.Overrides
	Context    render.Context
	Config     *config.Config
	Resolver   resolve.ModuleResolver
}

// generated is the outcome of one generation.
type generated struct {
	Descriptor *transform.Descriptor
	Output     string // resolved output path, "-" for stdout
	Content    string
	Entry      string // entry file path, empty when none is declared
}

// defaultOutput returns <descriptor dir>/<name>.cli.ts.
func defaultOutput(desc *transform.Descriptor) string {
	return filepath.Join(desc.Dir(), desc.Name+".cli.ts")
}

// generate runs the whole pipeline: descriptor, render, print, validate.
// Nothing is written.
func generate(req generateRequest) (*generated, error) {
	log := logger.ChildLogger(logger.ComponentLogger("generate"), logger.FieldDescriptor, req.Descriptor)

	desc, err := transform.LoadDescriptor(req.Descriptor)
	if err != nil {
		return nil, err
	}
	if build := version.Get(); build.Release() {
		if err := transform.CheckGenerator(desc.Generator, build.Version); err != nil {
			return nil, errors.Wrapf(err, "descriptor %s", req.Descriptor)
		}
	} else if desc.Generator != "" {
		log.Debugw("Skipping generator constraint on development build",
			"constraint", desc.Generator, "version", build.Version)
	}

	result, err := desc.Result()
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", req.Descriptor)
	}

	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}
	format := req.Format
	if format == "" {
		format = cfg.Output.Format
	}

	output := req.Output
	if output == "" {
		output = defaultOutput(desc)
	}
	// Import specifiers are computed against this path even when printing to stdout.
	anchor := output
	if output == stdoutPath {
		anchor = defaultOutput(desc)
	} else {
		output = emit.OutputPath(output, format)
		anchor = output
	}
	if anchor, err = filepath.Abs(anchor); err != nil {
		return nil, errors.Wrap(err, "failed to resolve output path")
	}

	var entry *transform.SourceFile
	if req.Context.Stdin {
		if desc.Entry == "" {
			return nil, errors.WithHint(
				errors.NewInvalidInputError("--stdin needs an entry file"),
				"set `entry` in the descriptor")
		}
		if entry, err = transform.LoadSourceFile(desc.EntryPath()); err != nil {
			return nil, err
		}
	}

	overrides := cfg.Overrides().Then(req.Overrides)
	nodes, err := render.Renderer{
		Resolver: req.Resolver,
		Logger:   logger.ChildLogger(logger.ComponentLogger("render"), logger.FieldDescriptor, req.Descriptor),
	}.Render(result, anchor, entry, overrides, req.Context)
	if err != nil {
		return nil, err
	}

	withHeader := cfg.Output.Header
	if req.Header != nil {
		withHeader = *req.Header
	}
	var header *emit.Header
	if withHeader {
		header = &emit.Header{
			Descriptor: relativeTo(filepath.Dir(anchor), desc.Path),
			Version:    version.Get().Version,
		}
	}

	content, err := emit.Render(nodes, header, format, filepath.Base(anchor))
	if err != nil {
		return nil, errors.Wrapf(err, "emit %s", output)
	}

	log.Debugw("Generated entry module",
		logger.FieldOutput, output,
		logger.FieldFunction, result.Name,
		logger.FieldCount, strings.Count(content, "\n"))

	return &generated{
		Descriptor: desc,
		Output:     output,
		Content:    content,
		Entry:      desc.EntryPath(),
	}, nil
}

// write stores the generated module, or prints it to stdout.
func (g *generated) write(stdout io.Writer) error {
	if g.Output == stdoutPath {
		_, err := io.WriteString(stdout, g.Content)
		return err
	}
	return emit.WriteFile(g.Output, g.Content)
}

func relativeTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}

// loadConfig loads configuration from --config, or the user and project files.
func loadConfig(file string) (*config.Loaded, error) {
	loaded, err := config.Load(config.Options{File: file})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return loaded, nil
}
