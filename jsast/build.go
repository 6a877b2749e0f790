package jsast

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// ID returns an identifier node.
func ID(name string) *Ident {
	return &Ident{Name: name}
}

// Str returns a string literal node.
func Str(value string) *StringLit {
	return &StringLit{Value: value}
}

// Strs returns an array literal of string literals.
func Strs(values ...string) *ArrayLit {
	elems := make([]Expr, len(values))
	for i, v := range values {
		elems[i] = Str(v)
	}
	return &ArrayLit{Elems: elems}
}

// Call returns a call expression. Args are copied into a new slice.
func Call(callee Expr, args ...Expr) *CallExpr {
	return &CallExpr{Callee: callee, Args: append([]Expr(nil), args...)}
}

// CallName returns a standalone call `name(args...)`.
func CallName(name string, args ...Expr) *CallExpr {
	return Call(ID(name), args...)
}

// Member returns `object.property`.
func Member(object Expr, property string) *MemberExpr {
	return &MemberExpr{Object: object, Property: property}
}

// Arrow returns an arrow function with a block body.
func Arrow(params []*Param, body ...Stmt) *ArrowFunc {
	return &ArrowFunc{Params: params, Body: append([]Stmt(nil), body...)}
}

// P returns an untyped parameter bound to name.
func P(name string) *Param {
	return &Param{Binding: ID(name)}
}

// Expression returns an expression statement.
func Expression(x Expr) *ExprStmt {
	return &ExprStmt{X: x}
}

// Return returns a return statement.
func Return(x Expr) *ReturnStmt {
	return &ReturnStmt{X: x}
}

// Const returns `const binding = init;`.
func Const(binding Pattern, init Expr) *VarDecl {
	return &VarDecl{Kind: "const", Binding: binding, Init: init}
}

// Value converts a decoded descriptor value (string, bool, number, nil or a
// slice of those) into a literal expression. Anything else reports false.
func Value(v interface{}) (Expr, bool) {
	switch val := v.(type) {
	case nil:
		return &NullLit{}, true
	case string:
		return Str(val), true
	case bool:
		return &BoolLit{Value: val}, true
	case int:
		return &NumberLit{Value: float64(val)}, true
	case int64:
		return &NumberLit{Value: float64(val)}, true
	case uint64:
		return &NumberLit{Value: float64(val)}, true
	case float64:
		return &NumberLit{Value: val}, true
	case []interface{}:
		elems := make([]Expr, 0, len(val))
		for _, item := range val {
			e, ok := Value(item)
			if !ok {
				return nil, false
			}
			elems = append(elems, e)
		}
		return &ArrayLit{Elems: elems}, true
	case []string:
		return Strs(val...), true
	default:
		return nil, false
	}
}

// IsIdentifier reports whether name can be used as a JavaScript binding:
// letters, digits, `_` and `$`, not starting with a digit, not a reserved word.
func IsIdentifier(name string) bool {
	if name == "" || reservedWords[name] {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return utf8.ValidString(name)
}

// Equal reports whether two nodes are structurally equal.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true, "let": true, "static": true,
	"await": true, "implements": true, "interface": true, "package": true,
	"private": true, "protected": true, "public": true,
}
