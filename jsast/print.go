package jsast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Print renders top-level nodes as TypeScript source.
//
// Statements end with a semicolon and a newline. A blank line separates the
// import block from what follows and surrounds function declarations. Call
// chains of two or more links put each link on its own line.
func Print(nodes ...Node) string {
	p := &printer{}
	var prev Node
	for _, n := range nodes {
		if prev != nil && blankLineBetween(prev, n) {
			p.sb.WriteByte('\n')
		}
		p.node(n, 0)
		prev = n
	}
	return p.sb.String()
}

// PrintExpr renders a single expression at the top indentation level.
func PrintExpr(e Expr) string {
	p := &printer{}
	p.expr(e, 0)
	return p.sb.String()
}

func blankLineBetween(prev, next Node) bool {
	_, prevImport := prev.(*ImportDecl)
	_, nextImport := next.(*ImportDecl)
	if prevImport && !nextImport {
		return true
	}
	_, prevFunc := prev.(*FuncDecl)
	_, nextFunc := next.(*FuncDecl)
	return prevFunc || nextFunc
}

type printer struct {
	sb strings.Builder
}

func (p *printer) write(s string) {
	p.sb.WriteString(s)
}

func (p *printer) indent(level int) {
	p.sb.WriteString(strings.Repeat(indentUnit, level))
}

func (p *printer) node(n Node, level int) {
	switch n := n.(type) {
	case Stmt:
		p.stmt(n, level)
	case Expr:
		p.indent(level)
		p.expr(n, level)
		p.write("\n")
	default:
		panic(fmt.Sprintf("jsast: cannot print %T at statement position", n))
	}
}

func (p *printer) stmt(s Stmt, level int) {
	switch s := s.(type) {
	case *ExprStmt:
		p.indent(level)
		p.expr(s.X, level)
		p.write(";\n")
	case *ReturnStmt:
		p.indent(level)
		if s.X == nil {
			p.write("return;\n")
			return
		}
		p.write("return ")
		p.expr(s.X, level)
		p.write(";\n")
	case *VarDecl:
		p.indent(level)
		p.write(s.Kind)
		p.write(" ")
		p.pattern(s.Binding)
		if s.Init != nil {
			p.write(" = ")
			p.expr(s.Init, level)
		}
		p.write(";\n")
	case *ImportDecl:
		p.indent(level)
		p.importDecl(s)
	case *FuncDecl:
		p.funcDecl(s, level)
	case *Raw:
		text := strings.TrimRight(s.Text, "\n")
		if text == "" {
			return
		}
		p.write(text)
		p.write("\n")
	default:
		panic(fmt.Sprintf("jsast: unknown statement %T", s))
	}
}

func (p *printer) importDecl(s *ImportDecl) {
	p.write("import ")
	var clauses []string
	if s.Default != "" {
		clauses = append(clauses, s.Default)
	}
	if s.Namespace != "" {
		clauses = append(clauses, "* as "+s.Namespace)
	} else if len(s.Named) > 0 {
		clauses = append(clauses, "{ "+strings.Join(s.Named, ", ")+" }")
	}
	if len(clauses) > 0 {
		p.write(strings.Join(clauses, ", "))
		p.write(" from ")
	}
	p.write(quote(s.Source))
	p.write(";\n")
}

func (p *printer) funcDecl(f *FuncDecl, level int) {
	p.indent(level)
	if f.Export {
		p.write("export ")
	}
	if f.Default {
		p.write("default ")
	}
	if f.Async {
		p.write("async ")
	}
	p.write("function ")
	p.write(f.Name)
	p.params(f.Params, level)
	if f.ReturnType != nil {
		p.write(": ")
		p.typ(f.ReturnType)
	}
	p.block(f.Body, level)
	p.write("\n")
}

// block writes ` {`, the body one level deeper, and the closing brace at level.
func (p *printer) block(body []Stmt, level int) {
	if len(body) == 0 {
		p.write(" {}")
		return
	}
	p.write(" {\n")
	for _, s := range body {
		p.stmt(s, level+1)
	}
	p.indent(level)
	p.write("}")
}

func (p *printer) params(params []*Param, level int) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(param.Binding)
		if param.Type != nil {
			p.write(": ")
			p.typ(param.Type)
		}
		if param.Default != nil {
			p.write(" = ")
			p.expr(param.Default, level)
		}
	}
	p.write(")")
}

func (p *printer) pattern(pat Pattern) {
	switch pat := pat.(type) {
	case *Ident:
		p.write(pat.Name)
	case *ObjectPattern:
		parts := append([]string(nil), pat.Names...)
		if pat.Rest != "" {
			parts = append(parts, "..."+pat.Rest)
		}
		if len(parts) == 0 {
			p.write("{}")
			return
		}
		p.write("{ ")
		p.write(strings.Join(parts, ", "))
		p.write(" }")
	default:
		panic(fmt.Sprintf("jsast: unknown pattern %T", pat))
	}
}

func (p *printer) typ(t TypeNode) {
	switch t := t.(type) {
	case *TypeRef:
		p.write(t.Name)
		p.typeArgs(t.Args)
	case *ArrayType:
		p.typ(t.Elem)
		p.write("[]")
	default:
		panic(fmt.Sprintf("jsast: unknown type node %T", t))
	}
}

func (p *printer) typeArgs(args []TypeNode) {
	if len(args) == 0 {
		return
	}
	p.write("<")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.typ(a)
	}
	p.write(">")
}

func (p *printer) expr(e Expr, level int) {
	switch e := e.(type) {
	case *Ident:
		p.write(e.Name)
	case *StringLit:
		p.write(quote(e.Value))
	case *NumberLit:
		p.write(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *BoolLit:
		p.write(strconv.FormatBool(e.Value))
	case *NullLit:
		p.write("null")
	case *ArrayLit:
		p.write("[")
		p.exprList(e.Elems, level)
		p.write("]")
	case *ObjectLit:
		if len(e.Props) == 0 {
			p.write("{}")
			return
		}
		p.write("{ ")
		for i, prop := range e.Props {
			if i > 0 {
				p.write(", ")
			}
			if IsIdentifier(prop.Key) {
				p.write(prop.Key)
			} else {
				p.write(quote(prop.Key))
			}
			p.write(": ")
			p.expr(prop.Value, level)
		}
		p.write(" }")
	case *MemberExpr:
		p.expr(e.Object, level)
		p.write(".")
		p.write(e.Property)
	case *CallExpr:
		p.call(e, level)
	case *ArrowFunc:
		p.params(e.Params, level)
		p.write(" =>")
		p.block(e.Body, level)
	default:
		panic(fmt.Sprintf("jsast: unknown expression %T", e))
	}
}

func (p *printer) exprList(list []Expr, level int) {
	for i, x := range list {
		if i > 0 {
			p.write(", ")
		}
		p.expr(x, level)
	}
}

// chainLinks unrolls `root.a(...).b(...)` into root and its links, outermost last.
func chainLinks(c *CallExpr) (Expr, []*CallExpr) {
	var links []*CallExpr
	var root Expr = c
	for {
		call, ok := root.(*CallExpr)
		if !ok {
			break
		}
		m, ok := call.Callee.(*MemberExpr)
		if !ok {
			break
		}
		links = append(links, call)
		root = m.Object
	}
	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}
	return root, links
}

func (p *printer) call(c *CallExpr, level int) {
	root, links := chainLinks(c)
	if len(links) < 2 {
		p.expr(c.Callee, level)
		p.typeArgs(c.TypeArgs)
		p.write("(")
		p.exprList(c.Args, level)
		p.write(")")
		return
	}

	p.expr(root, level)
	for _, link := range links {
		p.write("\n")
		p.indent(level + 1)
		p.write(".")
		p.write(link.Callee.(*MemberExpr).Property)
		p.typeArgs(link.TypeArgs)
		p.write("(")
		p.exprList(link.Args, level+1)
		p.write(")")
	}
}

// quote renders s as a double-quoted string literal using JSON escaping,
// which is always a valid JavaScript string literal.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
