package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/cligen/emit"
	"github.com/teranos/cligen/render"
)

// DefaultDebounceMS is the --watch debounce when none is configured.
const DefaultDebounceMS = 200

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("render.lib", d.Render.Lib)
	v.SetDefault("render.function_name", d.Render.FunctionName)
	v.SetDefault("render.strict", d.Render.Strict)
	v.SetDefault("render.help", d.Render.Help)
	v.SetDefault("render.help_alias", d.Render.HelpAlias)
	v.SetDefault("render.version", d.Render.Version)
	v.SetDefault("render.async_function", d.Render.AsyncFunction)
	v.SetDefault("render.runnable", d.Render.Runnable)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.header", d.Output.Header)

	v.SetDefault("watch.debounce_ms", d.Watch.DebounceMS)
}

// Default returns the configuration used when no file or variable sets anything.
func Default() *Config {
	return &Config{
		Render: render.DefaultOptions(),
		Output: OutputConfig{
			Format: emit.FormatTS,
			Header: true,
		},
		Watch: WatchConfig{DebounceMS: DefaultDebounceMS},
	}
}
