// Package render assembles the syntax tree of a command-line entry module
// from a transform.Result: a fluent parser chain wrapped in an exported
// function, plus the imports or inlined source the chain dispatches to.
package render

import (
	"time"

	"go.uber.org/zap"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
	"github.com/teranos/cligen/logger"
	"github.com/teranos/cligen/resolve"
	"github.com/teranos/cligen/transform"
)

// Renderer carries the collaborators of a render. The zero value is usable.
type Renderer struct {
	// Resolver locates the library on disk in stdin mode.
	Resolver resolve.ModuleResolver

	// Logger receives debug output. Nil falls back to the global logger.
	Logger *zap.SugaredLogger
}

// Render builds the entry module for result with the package defaults.
func Render(result *transform.Result, outputFile string, entry *transform.SourceFile, overrides Overrides, ctx Context) ([]jsast.Node, error) {
	return Renderer{}.Render(result, outputFile, entry, overrides, ctx)
}

// Render merges overrides over DefaultOptions and builds the chain
//
//	yargs.strict().command(...).help().alias("help", "h").version().parse(args)
//
// where every link except command and parse can be switched off.
func (r Renderer) Render(result *transform.Result, outputFile string, entry *transform.SourceFile, overrides Overrides, ctx Context) ([]jsast.Node, error) {
	start := time.Now()
	log := r.logger()

	if err := result.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid transform result")
	}

	opts := DefaultOptions().Merge(overrides)

	command, err := BuildCommand(result)
	if err != nil {
		return nil, errors.Wrapf(err, "build command for %s", result.Name)
	}

	calls := TopLevelCalls(opts, command)
	chain, err := BuildChain(calls, jsast.ID(LibAlias))
	if err != nil {
		return nil, errors.Wrap(err, "build top-level chain")
	}

	nodes, err := BuildWrapper([]jsast.Stmt{jsast.Expression(chain)}, WrapperOptions{
		OutputFile: outputFile,
		Entry:      entry,
		Result:     result,
		Context:    ctx,
		Options:    opts,
		Resolver:   r.Resolver,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build wrapper")
	}

	log.Debugw("Rendered entry module",
		logger.FieldFunction, result.Name,
		logger.FieldOutput, outputFile,
		logger.FieldPositionals, len(result.Positionals),
		logger.FieldOptions, len(result.Options),
		logger.FieldLinks, len(calls),
		logger.FieldMode, modeName(ctx),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nodes, nil
}

// TopLevelCalls returns the standalone calls of the library chain in order.
// command is always included and parse(args) is always last.
func TopLevelCalls(o Options, command *jsast.CallExpr) []*jsast.CallExpr {
	var calls []*jsast.CallExpr
	if o.Strict {
		calls = append(calls, jsast.CallName("strict"))
	}
	calls = append(calls, command)
	if o.Help {
		calls = append(calls, jsast.CallName("help"))
	}
	if o.HelpAlias {
		calls = append(calls, jsast.CallName("alias", jsast.Str("help"), jsast.Str("h")))
	}
	if o.Version {
		calls = append(calls, jsast.CallName("version"))
	}
	return append(calls, jsast.CallName("parse", jsast.ID(argsParam)))
}

func (r Renderer) logger() *zap.SugaredLogger {
	if r.Logger != nil {
		return r.Logger
	}
	return logger.ComponentLogger("render")
}

func modeName(ctx Context) string {
	if ctx.Stdin {
		return "stdin"
	}
	return "imports"
}
