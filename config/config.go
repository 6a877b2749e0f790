// Package config loads cligen settings from TOML files and CLIGEN_*
// environment variables.
package config

import (
	"github.com/teranos/cligen/render"
)

// Config represents the cligen configuration
type Config struct {
	Render render.Options `mapstructure:"render" toml:"render" json:"render" yaml:"render"`
	Output OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Watch  WatchConfig    `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// OutputConfig configures how generated modules are written
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"` // ts or js
	Header bool   `mapstructure:"header" toml:"header" json:"header" yaml:"header"` // prepend the generated-code header
}

// WatchConfig configures --watch
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"` // 0 regenerates on every event
}

// File names and locations
const (
	ProjectConfigName = "cligen.toml"
	UserConfigDir     = ".cligen"
	UserConfigName    = "config.toml"
	EnvPrefix         = "CLIGEN"

	DefaultDirPermissions = 0o750
)

// Overrides returns the render settings as overrides with every field set,
// ready to be layered under command-line flags.
func (c *Config) Overrides() render.Overrides {
	o := c.Render
	return render.Overrides{
		Lib:           render.String(o.Lib),
		FunctionName:  render.String(o.FunctionName),
		Strict:        render.Bool(o.Strict),
		Help:          render.Bool(o.Help),
		HelpAlias:     render.Bool(o.HelpAlias),
		Version:       render.Bool(o.Version),
		AsyncFunction: render.Bool(o.AsyncFunction),
		Runnable:      render.Bool(o.Runnable),
	}
}
