package transform

import (
	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// Settings keys in the order they appear in the generated object literal.
var (
	positionalKeys = []string{"type", "describe", "choices", "default", "array"}
	optionKeys     = []string{"alias", "type", "describe", "choices", "default", "demandOption", "array"}
)

// definitionCall builds a standalone registration call such as
// option("verbose", { alias: "v", type: "boolean" }). Only set keys are emitted;
// with no settings the object argument is dropped.
func definitionCall(callee string, spec ArgSpec, keys []string) (*jsast.CallExpr, error) {
	settings := &jsast.ObjectLit{}
	for _, key := range keys {
		value, set, err := specValue(spec, key)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %q", callee, spec.Name)
		}
		if set {
			settings.Props = append(settings.Props, jsast.Property{Key: key, Value: value})
		}
	}

	args := []jsast.Expr{jsast.Str(spec.Name)}
	if len(settings.Props) > 0 {
		args = append(args, settings)
	}
	return jsast.CallName(callee, args...), nil
}

func specValue(spec ArgSpec, key string) (jsast.Expr, bool, error) {
	switch key {
	case "type":
		return jsast.Str(spec.Type), spec.Type != "", nil
	case "describe":
		return jsast.Str(spec.Describe), spec.Describe != "", nil
	case "alias":
		return jsast.Str(spec.Alias), spec.Alias != "", nil
	case "demandOption":
		return &jsast.BoolLit{Value: true}, spec.DemandOption, nil
	case "array":
		return &jsast.BoolLit{Value: true}, spec.Array, nil
	case "choices":
		if len(spec.Choices) == 0 {
			return nil, false, nil
		}
		e, ok := jsast.Value(spec.Choices)
		if !ok {
			return nil, false, errors.NewInvalidInputError("choices must be scalar values")
		}
		return e, true, nil
	case "default":
		if spec.Default == nil {
			return nil, false, nil
		}
		e, ok := jsast.Value(spec.Default)
		if !ok {
			return nil, false, errors.NewInvalidInputError("default must be a scalar or a list of scalars")
		}
		return e, true, nil
	}
	return nil, false, errors.InvariantViolationf("unknown settings key %q", key)
}
