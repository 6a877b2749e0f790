package render

// LibAlias is the local name the argument-parsing library is imported under.
const LibAlias = "yargs"

// Options controls the shape of the generated entry module.
type Options struct {
	// Lib is the module specifier of the argument-parsing library.
	Lib string `mapstructure:"lib" toml:"lib" json:"lib" yaml:"lib"`

	// FunctionName names the exported wrapper function.
	FunctionName string `mapstructure:"function_name" toml:"function_name" json:"function_name" yaml:"function_name"`

	Strict        bool `mapstructure:"strict" toml:"strict" json:"strict" yaml:"strict"`
	Help          bool `mapstructure:"help" toml:"help" json:"help" yaml:"help"`
	HelpAlias     bool `mapstructure:"help_alias" toml:"help_alias" json:"help_alias" yaml:"help_alias"`
	Version       bool `mapstructure:"version" toml:"version" json:"version" yaml:"version"`
	AsyncFunction bool `mapstructure:"async_function" toml:"async_function" json:"async_function" yaml:"async_function"`

	// Runnable appends a direct call of the wrapper so the module executes on load.
	Runnable bool `mapstructure:"runnable" toml:"runnable" json:"runnable" yaml:"runnable"`
}

// DefaultOptions returns the options used when a caller sets nothing.
func DefaultOptions() Options {
	return Options{
		Lib:          "yargs",
		FunctionName: "cli",
		Strict:       true,
		Help:         true,
		HelpAlias:    true,
		Version:      true,
	}
}

// Overrides carries caller-supplied option values. A nil field keeps the
// value it is merged over.
type Overrides struct {
	Lib           *string
	FunctionName  *string
	Strict        *bool
	Help          *bool
	HelpAlias     *bool
	Version       *bool
	AsyncFunction *bool
	Runnable      *bool
}

// Merge returns o with every set field of ov applied.
func (o Options) Merge(ov Overrides) Options {
	if ov.Lib != nil {
		o.Lib = *ov.Lib
	}
	if ov.FunctionName != nil {
		o.FunctionName = *ov.FunctionName
	}
	setBool(&o.Strict, ov.Strict)
	setBool(&o.Help, ov.Help)
	setBool(&o.HelpAlias, ov.HelpAlias)
	setBool(&o.Version, ov.Version)
	setBool(&o.AsyncFunction, ov.AsyncFunction)
	setBool(&o.Runnable, ov.Runnable)
	return o
}

// Then layers next over ov: fields set in next win.
func (ov Overrides) Then(next Overrides) Overrides {
	if next.Lib != nil {
		ov.Lib = next.Lib
	}
	if next.FunctionName != nil {
		ov.FunctionName = next.FunctionName
	}
	for _, pair := range []struct{ dst, src **bool }{
		{&ov.Strict, &next.Strict},
		{&ov.Help, &next.Help},
		{&ov.HelpAlias, &next.HelpAlias},
		{&ov.Version, &next.Version},
		{&ov.AsyncFunction, &next.AsyncFunction},
		{&ov.Runnable, &next.Runnable},
	} {
		if *pair.src != nil {
			*pair.dst = *pair.src
		}
	}
	return ov
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Context describes how the generated module will be consumed.
type Context struct {
	// Stdin means the output is evaluated without module resolution: the
	// library is imported by absolute path and the entry file is inlined.
	Stdin bool

	// Args, when non-nil, are baked into the direct invocation of the wrapper.
	Args []string
}

// Bool and String return pointers for building Overrides.
func Bool(v bool) *bool { return &v }

func String(v string) *string { return &v }
