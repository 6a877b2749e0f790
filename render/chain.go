package render

import (
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// BuildChain folds standalone calls onto base, producing
// base.c1(...).c2(...)...cn(...). Each call's callee must be a bare
// identifier; its arguments and type arguments are reused in order.
// An empty call list returns base unchanged.
func BuildChain(calls []*jsast.CallExpr, base jsast.Expr) (jsast.Expr, error) {
	if base == nil {
		return nil, errors.InvariantViolationf("chain base is nil")
	}

	expr := base
	for i, call := range calls {
		linked, err := attach(expr, call)
		if err != nil {
			return nil, errors.Wrapf(err, "chain link %d", i)
		}
		expr = linked
	}
	return expr, nil
}

// attach returns a new call `expr.name(args...)` for a standalone `name(args...)`.
func attach(expr jsast.Expr, call *jsast.CallExpr) (*jsast.CallExpr, error) {
	if call == nil {
		return nil, errors.InvariantViolationf("call is nil")
	}
	id, ok := call.Callee.(*jsast.Ident)
	if !ok {
		return nil, errors.InvariantViolationf("callee is %T, want a bare identifier", call.Callee)
	}
	return &jsast.CallExpr{
		Callee:   jsast.Member(expr, id.Name),
		Args:     call.Args,
		TypeArgs: call.TypeArgs,
	}, nil
}
