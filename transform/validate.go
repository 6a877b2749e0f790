package transform

import (
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// reservedBindings are names the generated handler binds itself:
// the parsed-args parameter, the positional bucket, the script name and the
// options aggregate. A positional with one of these names would collide.
var reservedBindings = map[string]bool{
	"argv":    true,
	"_":       true,
	"$0":      true,
	"options": true,
}

// destructuredBindings are the parsed-args fields the handler pulls out before
// the rest capture. An option with one of these names never reaches options.
var destructuredBindings = map[string]bool{
	"_":  true,
	"$0": true,
}

// Validate checks the invariants the renderer relies on.
// It fails fast so malformed input never turns into malformed output.
func (r *Result) Validate() error {
	if r == nil {
		return errors.NewInvalidInputError("transform result is nil")
	}
	if !jsast.IsIdentifier(r.Name) {
		return errors.NewInvalidInputError("function name %q is not a valid identifier", r.Name)
	}
	if r.Description == nil {
		return errors.NewInvalidInputError("function %s has no description node", r.Name)
	}

	seen := make(map[string]string)
	for i, p := range r.Positionals {
		if !jsast.IsIdentifier(p.Name) {
			return errors.NewInvalidInputError("positional %d name %q is not a valid identifier", i, p.Name)
		}
		if reservedBindings[p.Name] {
			return errors.WithHintf(
				errors.NewInvalidInputError("positional %q collides with a name bound by the generated handler", p.Name),
				"rename the parameter; %q is reserved", p.Name)
		}
		if p.Name == r.Name {
			return errors.NewInvalidInputError("positional %q shadows the function it is passed to", p.Name)
		}
		if p.Call == nil {
			return errors.NewInvalidInputError("positional %q has no definition call", p.Name)
		}
		if prev, dup := seen[p.Name]; dup {
			return errors.NewInvalidInputError("duplicate %s name %q", prev, p.Name)
		}
		seen[p.Name] = "positional"
	}

	for i, o := range r.Options {
		if o.Name == "" {
			return errors.NewInvalidInputError("option %d has an empty name", i)
		}
		if destructuredBindings[o.Name] {
			return errors.WithHintf(
				errors.NewInvalidInputError("option %q would be captured by the handler's %q binding", o.Name, o.Name),
				"rename the option; %q never reaches the options object", o.Name)
		}
		if o.Call == nil {
			return errors.NewInvalidInputError("option %q has no definition call", o.Name)
		}
		if prev, dup := seen[o.Name]; dup {
			return errors.NewInvalidInputError("option %q duplicates a %s of the same name", o.Name, prev)
		}
		seen[o.Name] = "option"
	}

	for file, exports := range r.Ref {
		if file == "" {
			return errors.NewInvalidInputError("ref entry with empty source file")
		}
		for _, name := range exports.Named {
			if !jsast.IsIdentifier(name) {
				return errors.NewInvalidInputError("named export %q from %s is not a valid identifier", name, file)
			}
		}
		if len(exports.Default) > 0 && exports.Default[0] != "" && !jsast.IsIdentifier(exports.Default[0]) {
			return errors.NewInvalidInputError("default export %q from %s is not a valid identifier", exports.Default[0], file)
		}
	}

	return nil
}
