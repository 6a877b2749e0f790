package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintExpr_Literals(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"identifier", ID("yargs"), "yargs"},
		{"string", Str("hello"), `"hello"`},
		{"string escapes", Str("say \"hi\"\n<b>"), `"say \"hi\"\n<b>"`},
		{"integer", &NumberLit{Value: 42}, "42"},
		{"float", &NumberLit{Value: 0.5}, "0.5"},
		{"bool", &BoolLit{Value: true}, "true"},
		{"null", &NullLit{}, "null"},
		{"empty array", &ArrayLit{}, "[]"},
		{"string array", Strs("a", "b"), `["a", "b"]`},
		{"empty object", &ObjectLit{}, "{}"},
		{"object", &ObjectLit{Props: []Property{
			{Key: "type", Value: Str("string")},
			{Key: "demand-option", Value: &BoolLit{Value: true}},
		}}, `{ type: "string", "demand-option": true }`},
		{"member", Member(Member(ID("process"), "argv"), "slice"), "process.argv.slice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintExpr(tt.expr))
		})
	}
}

func TestPrintExpr_SingleLinkStaysInline(t *testing.T) {
	call := Call(Member(Member(ID("process"), "argv"), "slice"), &NumberLit{Value: 2})
	assert.Equal(t, "process.argv.slice(2)", PrintExpr(call))
}

func TestPrintExpr_ChainBreaksLinks(t *testing.T) {
	chain := Call(Member(Call(Member(ID("yargs"), "strict")), "parse"), ID("args"))
	assert.Equal(t, "yargs\n  .strict()\n  .parse(args)", PrintExpr(chain))
}

func TestPrintExpr_TypeArgs(t *testing.T) {
	call := &CallExpr{
		Callee:   ID("option"),
		Args:     []Expr{Str("n")},
		TypeArgs: []TypeNode{&TypeRef{Name: "number"}},
	}
	assert.Equal(t, `option<number>("n")`, PrintExpr(call))
}

func TestPrintExpr_Arrow(t *testing.T) {
	fn := Arrow([]*Param{P("argv")},
		Const(&ObjectPattern{Names: []string{"_", "$0", "file"}, Rest: "options"}, ID("argv")),
		Expression(Call(ID("run"), ID("file"), ID("options"))),
	)
	want := "(argv) => {\n" +
		"  const { _, $0, file, ...options } = argv;\n" +
		"  run(file, options);\n" +
		"}"
	assert.Equal(t, want, PrintExpr(fn))
	assert.Equal(t, "() => {}", PrintExpr(Arrow(nil)))
}

func TestPrint_ImportForms(t *testing.T) {
	out := Print(
		&ImportDecl{Namespace: "yargs", Source: "yargs"},
		&ImportDecl{Default: "greet", Named: []string{"a", "b"}, Source: "./greet"},
		&ImportDecl{Named: []string{"c"}, Source: "./c"},
		&ImportDecl{Source: "./side-effect"},
	)
	want := `import * as yargs from "yargs";
import greet, { a, b } from "./greet";
import { c } from "./c";
import "./side-effect";
`
	assert.Equal(t, want, out)
}

func TestPrint_FuncDecl(t *testing.T) {
	fn := &FuncDecl{
		Name:    "cli",
		Export:  true,
		Default: true,
		Async:   true,
		Params: []*Param{{
			Binding: ID("args"),
			Type:    &ArrayType{Elem: &TypeRef{Name: "string"}},
			Default: Call(Member(Member(ID("process"), "argv"), "slice"), &NumberLit{Value: 2}),
		}},
		ReturnType: &TypeRef{Name: "Promise", Args: []TypeNode{&TypeRef{Name: "void"}}},
		Body:       []Stmt{Expression(Call(ID("run")))},
	}

	out := Print(&ImportDecl{Namespace: "yargs", Source: "yargs"}, fn, Expression(Call(ID("cli"))))
	want := `import * as yargs from "yargs";

export default async function cli(args: string[] = process.argv.slice(2)): Promise<void> {
  run();
}

cli();
`
	assert.Equal(t, want, out)
}

func TestPrint_NestedChainIndentation(t *testing.T) {
	inner := Call(Member(Call(Member(ID("parser"), "positional"), Str("a")), "option"), Str("b"))
	builder := Arrow([]*Param{P("parser")}, Return(inner))
	outer := Call(Member(Call(Member(ID("yargs"), "command"), Str("$0"), builder), "parse"))

	want := "  yargs\n" +
		"    .command(\"$0\", (parser) => {\n" +
		"      return parser\n" +
		"        .positional(\"a\")\n" +
		"        .option(\"b\");\n" +
		"    })\n" +
		"    .parse();\n"

	p := &printer{}
	p.stmt(Expression(outer), 1)
	assert.Equal(t, want, p.sb.String())
}

func TestPrint_RawVerbatim(t *testing.T) {
	raw := &Raw{Text: "function greet(name: string) {\n  console.log(name);\n}\n"}
	assert.Equal(t, "function greet(name: string) {\n  console.log(name);\n}\n", Print(raw))
	assert.Equal(t, "", Print(&Raw{}))
}

func TestReturn_Bare(t *testing.T) {
	assert.Equal(t, "return;\n", Print(Return(nil)))
}
