// Package transform holds the input model of the generator: the structured
// description of a function signature that the renderer turns into an entry
// module, plus the descriptor files that produce it.
package transform

import (
	"github.com/teranos/cligen/jsast"
)

// Result describes one target function.
//
// Positional order matches the function's parameter order and is significant.
// Option order is preserved for deterministic output only.
type Result struct {
	// Name is the identifier the generated handler calls.
	Name string

	// Description is the command description shown in --help output.
	Description *jsast.StringLit

	Positionals []Positional
	Options     []Option

	// Ref maps a source file path to the exports the wrapper must import from it.
	Ref map[string]RefExports
}

// Positional is a positional argument and the call that registers it on the parser,
// e.g. positional("file", { type: "string" }).
type Positional struct {
	Name string
	Call *jsast.CallExpr

	// Optional positionals cannot be rendered; see render.CommandString.
	Optional bool
}

// Option is a named flag and the call that registers it, e.g. option("verbose", { type: "boolean" }).
type Option struct {
	Name string
	Call *jsast.CallExpr
}

// RefExports lists what a wrapper imports from one source file.
type RefExports struct {
	// Default holds the declaration name of the default export. Only the
	// first entry is used; an empty name marks an anonymous default.
	Default []string `json:"default,omitempty"`
	Named   []string `json:"named,omitempty"`
}

// SourceFile is the upstream entry file whose statements are inlined in stdin mode.
type SourceFile struct {
	Path       string
	Statements []jsast.Stmt
}

// HasPositionals reports whether at least one positional is declared.
func (r *Result) HasPositionals() bool {
	return len(r.Positionals) > 0
}

// HasOptions reports whether at least one option is declared.
func (r *Result) HasOptions() bool {
	return len(r.Options) > 0
}

// PositionalNames returns positional names in declaration order.
func (r *Result) PositionalNames() []string {
	names := make([]string, len(r.Positionals))
	for i, p := range r.Positionals {
		names[i] = p.Name
	}
	return names
}
