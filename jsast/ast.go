// Package jsast is a small TypeScript syntax tree used to assemble generated
// entry modules.
//
// Nodes are plain values. Every constructor returns a fresh node and nothing
// in this package mutates a node after it has been built, so trees can be
// composed freely without defensive copies.
package jsast

// Node is any syntax tree node.
type Node interface {
	jsNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement or top-level declaration.
type Stmt interface {
	Node
	stmtNode()
}

// TypeNode is a TypeScript type annotation.
type TypeNode interface {
	Node
	typeNode()
}

// Pattern is a binding target: an identifier or an object destructuring.
type Pattern interface {
	Node
	patternNode()
}

// Expressions
type (
	// Ident is a bare identifier such as `yargs` or `strict`.
	Ident struct {
		Name string
	}

	StringLit struct {
		Value string
	}

	NumberLit struct {
		Value float64
	}

	BoolLit struct {
		Value bool
	}

	NullLit struct{}

	ArrayLit struct {
		Elems []Expr
	}

	// ObjectLit keeps its properties in insertion order.
	ObjectLit struct {
		Props []Property
	}

	Property struct {
		Key   string
		Value Expr
	}

	// MemberExpr is a non-computed property access `Object.Property`.
	MemberExpr struct {
		Object   Expr
		Property string
	}

	CallExpr struct {
		Callee   Expr
		Args     []Expr
		TypeArgs []TypeNode
	}

	// ArrowFunc is an arrow function with a block body.
	ArrowFunc struct {
		Params []*Param
		Body   []Stmt
	}
)

// Param is a function parameter with an optional type and default value.
type Param struct {
	Binding Pattern
	Type    TypeNode
	Default Expr
}

// ObjectPattern is `{ a, b, ...rest }`. Rest is empty when there is no rest element.
type ObjectPattern struct {
	Names []string
	Rest  string
}

// Types
type (
	TypeRef struct {
		Name string
		Args []TypeNode
	}

	ArrayType struct {
		Elem TypeNode
	}
)

// Statements
type (
	ExprStmt struct {
		X Expr
	}

	// ReturnStmt returns X; a nil X prints a bare `return;`.
	ReturnStmt struct {
		X Expr
	}

	VarDecl struct {
		Kind    string // const, let or var
		Binding Pattern
		Init    Expr
	}

	// ImportDecl covers the namespace, default and named import forms.
	// Namespace excludes Named; Default may combine with either.
	ImportDecl struct {
		Default   string
		Namespace string
		Named     []string
		Source    string
	}

	FuncDecl struct {
		Name       string
		Export     bool
		Default    bool
		Async      bool
		Params     []*Param
		ReturnType TypeNode
		Body       []Stmt
	}

	// Raw is source text carried through verbatim.
	Raw struct {
		Text string
	}
)

func (*Ident) jsNode()         {}
func (*StringLit) jsNode()     {}
func (*NumberLit) jsNode()     {}
func (*BoolLit) jsNode()       {}
func (*NullLit) jsNode()       {}
func (*ArrayLit) jsNode()      {}
func (*ObjectLit) jsNode()     {}
func (*MemberExpr) jsNode()    {}
func (*CallExpr) jsNode()      {}
func (*ArrowFunc) jsNode()     {}
func (*ObjectPattern) jsNode() {}
func (*TypeRef) jsNode()       {}
func (*ArrayType) jsNode()     {}
func (*ExprStmt) jsNode()      {}
func (*ReturnStmt) jsNode()    {}
func (*VarDecl) jsNode()       {}
func (*ImportDecl) jsNode()    {}
func (*FuncDecl) jsNode()      {}
func (*Raw) jsNode()           {}

func (*Ident) exprNode()      {}
func (*StringLit) exprNode()  {}
func (*NumberLit) exprNode()  {}
func (*BoolLit) exprNode()    {}
func (*NullLit) exprNode()    {}
func (*ArrayLit) exprNode()   {}
func (*ObjectLit) exprNode()  {}
func (*MemberExpr) exprNode() {}
func (*CallExpr) exprNode()   {}
func (*ArrowFunc) exprNode()  {}

func (*Ident) patternNode()         {}
func (*ObjectPattern) patternNode() {}

func (*TypeRef) typeNode()   {}
func (*ArrayType) typeNode() {}

func (*ExprStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode() {}
func (*VarDecl) stmtNode()    {}
func (*ImportDecl) stmtNode() {}
func (*FuncDecl) stmtNode()   {}
func (*Raw) stmtNode()        {}
