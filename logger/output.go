package logger

// OutputCategory defines a category of CLI output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information the generate/check commands print.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Generated file paths, check verdicts
	OutputErrors                        // Errors with hints

	// Level 1 (-v)
	OutputProgress   // Descriptor loaded, regenerating after change
	OutputWatchEvent // File system events seen by --watch

	// Level 2 (-vv)
	OutputConfig // Effective render options
	OutputTiming // Render and write durations

	// Level 4 (-vvvv)
	OutputSourceDump // Full generated source echoed to stderr
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputProgress:   VerbosityInfo,
	OutputWatchEvent: VerbosityInfo,
	OutputConfig:     VerbosityDebug,
	OutputTiming:     VerbosityDebug,
	OutputSourceDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}
