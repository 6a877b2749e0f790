package render

import (
	"strings"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
	"github.com/teranos/cligen/transform"
)

const (
	scriptToken  = "$0"
	optionsToken = "[...options]"
)

// CommandString returns the default-command usage string: `$0`, one
// `<name>` per positional in order, and `[...options]` when options exist.
func CommandString(r *transform.Result) string {
	var sb strings.Builder
	sb.WriteString(scriptToken)
	for _, p := range r.Positionals {
		sb.WriteString(" <")
		sb.WriteString(p.Name)
		sb.WriteString(">")
	}
	if r.HasOptions() {
		sb.WriteString(" ")
		sb.WriteString(optionsToken)
	}
	return sb.String()
}

// BuildCommand returns the standalone call
// command(usage, description, builder, handler).
func BuildCommand(r *transform.Result) (*jsast.CallExpr, error) {
	for _, p := range r.Positionals {
		if p.Optional {
			return nil, errors.WithHint(
				errors.NewUnsupportedError("positional %q is optional", p.Name),
				"optional positionals cannot be expressed in the command string; make it required or turn it into an option")
		}
	}
	if r.Description == nil {
		return nil, errors.InvariantViolationf("function %s has no description", r.Name)
	}

	builder, err := BuildBuilderFunc(r)
	if err != nil {
		return nil, errors.Wrap(err, "builder callback")
	}

	return jsast.CallName("command",
		jsast.Str(CommandString(r)),
		jsast.Str(r.Description.Value),
		builder,
		BuildHandlerFunc(r),
	), nil
}
