package config

import (
	"github.com/teranos/cligen/emit"
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
	"github.com/teranos/cligen/render"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Render.Lib == "" {
		return errors.NewInvalidInputError("render.lib cannot be empty (omit for %q)", render.DefaultOptions().Lib)
	}
	if !jsast.IsIdentifier(c.Render.FunctionName) {
		return errors.NewInvalidInputError("render.function_name %q is not a valid identifier", c.Render.FunctionName)
	}
	if c.Render.FunctionName == render.LibAlias {
		return errors.NewInvalidInputError("render.function_name cannot be %q, it is the library alias", render.LibAlias)
	}

	switch c.Output.Format {
	case emit.FormatTS, emit.FormatJS:
	default:
		return errors.NewInvalidInputError("output.format must be %q or %q, got %q", emit.FormatTS, emit.FormatJS, c.Output.Format)
	}

	// 0 = no debounce, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.NewInvalidInputError("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
