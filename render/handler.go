package render

import (
	"github.com/teranos/cligen/jsast"
	"github.com/teranos/cligen/transform"
)

// Parameter and binding names used inside the generated callbacks.
const (
	parserParam  = "parser"
	argvParam    = "argv"
	bucketName   = "_"
	optionsAlias = "options"
)

// BuildBuilderFunc returns `(parser) => { return parser.positional(...)....option(...); }`.
// Positionals are registered before options, each group in declared order.
func BuildBuilderFunc(r *transform.Result) (*jsast.ArrowFunc, error) {
	calls := make([]*jsast.CallExpr, 0, len(r.Positionals)+len(r.Options))
	for _, p := range r.Positionals {
		calls = append(calls, p.Call)
	}
	for _, o := range r.Options {
		calls = append(calls, o.Call)
	}

	chain, err := BuildChain(calls, jsast.ID(parserParam))
	if err != nil {
		return nil, err
	}
	return jsast.Arrow([]*jsast.Param{jsast.P(parserParam)}, jsast.Return(chain)), nil
}

// BuildHandlerFunc returns the callback that unpacks parsed arguments and
// calls the target function:
//
//	(argv) => {
//	  const { _, $0, a, b, ...options } = argv;
//	  fn(a, b, options);
//	}
//
// The rest capture and the trailing options argument exist only when the
// function declares options.
func BuildHandlerFunc(r *transform.Result) *jsast.ArrowFunc {
	names := append([]string{bucketName, scriptToken}, r.PositionalNames()...)
	binding := &jsast.ObjectPattern{Names: names}

	args := make([]jsast.Expr, 0, len(r.Positionals)+1)
	for _, p := range r.Positionals {
		args = append(args, jsast.ID(p.Name))
	}
	if r.HasOptions() {
		binding.Rest = optionsAlias
		args = append(args, jsast.ID(optionsAlias))
	}

	return jsast.Arrow([]*jsast.Param{jsast.P(argvParam)},
		jsast.Const(binding, jsast.ID(argvParam)),
		jsast.Expression(jsast.CallName(r.Name, args...)),
	)
}
