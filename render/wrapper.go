package render

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
	"github.com/teranos/cligen/resolve"
	"github.com/teranos/cligen/transform"
)

const argsParam = "args"

// WrapperOptions bundles everything BuildWrapper needs besides the body.
type WrapperOptions struct {
	OutputFile string
	Entry      *transform.SourceFile
	Result     *transform.Result
	Context    Context
	Options    Options

	// Resolver locates the library in stdin mode. Nil uses resolve.NodeResolver.
	Resolver resolve.ModuleResolver
}

// sourceMode decides how the target function becomes visible to the wrapper.
// It is either InlineSource or ImportedReferences.
type sourceMode interface {
	nodes() ([]jsast.Node, error)
	// bindings lists the top-level names the mode introduces.
	bindings() []string
	kind() string
}

// InlineSource copies the entry file's statements into the output.
// Target is the function the entry declares for the handler to call.
type InlineSource struct {
	Entry  *transform.SourceFile
	Target string
}

// ImportedReferences imports each referenced source file relative to the output.
type ImportedReferences struct {
	OutputFile string
	Ref        map[string]transform.RefExports
}

func (s InlineSource) nodes() ([]jsast.Node, error) {
	out := make([]jsast.Node, 0, len(s.Entry.Statements))
	for _, stmt := range s.Entry.Statements {
		out = append(out, stmt)
	}
	return out, nil
}

// topLevelDecl matches a declaration starting at column zero of inlined text.
var topLevelDecl = regexp.MustCompile(`(?m)^(?:export\s+)?(?:default\s+)?(?:declare\s+)?(?:async\s+)?(?:function\s*\*?|class|const|let|var|enum)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

func (InlineSource) kind() string { return "inlined declaration" }

func (s InlineSource) bindings() []string {
	var names []string
	if s.Target != "" {
		names = append(names, s.Target)
	}
	for _, stmt := range s.Entry.Statements {
		switch st := stmt.(type) {
		case *jsast.Raw:
			for _, m := range topLevelDecl.FindAllStringSubmatch(st.Text, -1) {
				names = append(names, m[1])
			}
		case *jsast.FuncDecl:
			names = append(names, st.Name)
		case *jsast.VarDecl:
			switch b := st.Binding.(type) {
			case *jsast.Ident:
				names = append(names, b.Name)
			case *jsast.ObjectPattern:
				names = append(names, b.Names...)
				if b.Rest != "" {
					names = append(names, b.Rest)
				}
			}
		}
	}
	// Overload signatures repeat a name; only clashes with others matter.
	return dedupe(names)
}

func (s ImportedReferences) files() []string {
	files := make([]string, 0, len(s.Ref))
	for file := range s.Ref {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

func (s ImportedReferences) nodes() ([]jsast.Node, error) {
	var out []jsast.Node
	for _, file := range s.files() {
		exports := s.Ref[file]
		decl := &jsast.ImportDecl{
			Source: resolve.ImportSpecifier(s.OutputFile, file),
			Named:  dedupe(exports.Named),
		}
		if len(exports.Default) > 0 {
			decl.Default = resolve.DefaultImportName(exports.Default[0], file)
		}
		out = append(out, decl)
	}
	return out, nil
}

func (ImportedReferences) kind() string { return "import" }

func (s ImportedReferences) bindings() []string {
	var names []string
	for _, file := range s.files() {
		exports := s.Ref[file]
		if len(exports.Default) > 0 {
			names = append(names, resolve.DefaultImportName(exports.Default[0], file))
		}
		names = append(names, dedupe(exports.Named)...)
	}
	return names
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// selectSource resolves the source mode once from the context.
func selectSource(opts WrapperOptions) (sourceMode, error) {
	if opts.Context.Stdin {
		if opts.Entry == nil {
			return nil, errors.WithHint(
				errors.NewInvalidInputError("stdin mode needs the entry file"),
				"set `entry` in the descriptor")
		}
		mode := InlineSource{Entry: opts.Entry}
		if opts.Result != nil {
			mode.Target = opts.Result.Name
		}
		return mode, nil
	}
	var ref map[string]transform.RefExports
	if opts.Result != nil {
		ref = opts.Result.Ref
	}
	return ImportedReferences{OutputFile: opts.OutputFile, Ref: ref}, nil
}

// BuildWrapper assembles the module around body: the library import, the
// target function's source or imports, the exported wrapper function and,
// when runnable or in stdin mode, a direct call of the wrapper.
func BuildWrapper(body []jsast.Stmt, opts WrapperOptions) ([]jsast.Node, error) {
	if !jsast.IsIdentifier(opts.Options.FunctionName) {
		return nil, errors.NewInvalidInputError("wrapper function name %q is not a valid identifier", opts.Options.FunctionName)
	}

	mode, err := selectSource(opts)
	if err != nil {
		return nil, err
	}

	if err := checkBindings(mode, opts); err != nil {
		return nil, err
	}

	libImport, err := libraryImport(opts)
	if err != nil {
		return nil, err
	}

	nodes := []jsast.Node{libImport}

	source, err := mode.nodes()
	if err != nil {
		return nil, err
	}
	nodes = append(nodes, source...)

	nodes = append(nodes, wrapperFunc(body, opts.Options))

	if opts.Options.Runnable || opts.Context.Stdin {
		nodes = append(nodes, invocation(opts.Options.FunctionName, opts.Context.Args))
	}
	return nodes, nil
}

// checkBindings rejects imported or inlined names that would clash with the
// library alias, the wrapper function or each other.
func checkBindings(mode sourceMode, opts WrapperOptions) error {
	if opts.Options.FunctionName == LibAlias {
		return errors.NewInvalidInputError("wrapper function name %q collides with the library alias", LibAlias)
	}
	taken := map[string]string{
		LibAlias:                  "library alias",
		opts.Options.FunctionName: "wrapper function",
	}
	for _, name := range mode.bindings() {
		if what, ok := taken[name]; ok {
			return errors.WithHint(
				errors.NewInvalidInputError("%s %q collides with the %s", mode.kind(), name, what),
				"rename the export or change --function-name")
		}
		taken[name] = mode.kind()
	}
	return nil
}

func libraryImport(opts WrapperOptions) (*jsast.ImportDecl, error) {
	source := opts.Options.Lib
	if opts.Context.Stdin {
		resolver := opts.Resolver
		if resolver == nil {
			resolver = resolve.NodeResolver{}
		}
		from := filepath.Dir(opts.OutputFile)
		if opts.Entry != nil && opts.Entry.Path != "" {
			from = filepath.Dir(opts.Entry.Path)
		}
		resolved, err := resolver.Resolve(opts.Options.Lib, from)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s for stdin mode", opts.Options.Lib)
		}
		source = filepath.ToSlash(resolved)
	}
	return &jsast.ImportDecl{Namespace: LibAlias, Source: source}, nil
}

// wrapperFunc declares
// export default [async] function name(args: string[] = process.argv.slice(2)): void|Promise<void>.
func wrapperFunc(body []jsast.Stmt, o Options) *jsast.FuncDecl {
	processArgs := jsast.Call(
		jsast.Member(jsast.Member(jsast.ID("process"), "argv"), "slice"),
		&jsast.NumberLit{Value: 2},
	)

	var ret jsast.TypeNode = &jsast.TypeRef{Name: "void"}
	if o.AsyncFunction {
		ret = &jsast.TypeRef{Name: "Promise", Args: []jsast.TypeNode{ret}}
	}

	return &jsast.FuncDecl{
		Name:    o.FunctionName,
		Export:  true,
		Default: true,
		Async:   o.AsyncFunction,
		Params: []*jsast.Param{{
			Binding: jsast.ID(argsParam),
			Type:    &jsast.ArrayType{Elem: &jsast.TypeRef{Name: "string"}},
			Default: processArgs,
		}},
		ReturnType: ret,
		Body:       append([]jsast.Stmt(nil), body...),
	}
}

func invocation(name string, args []string) *jsast.ExprStmt {
	if args == nil {
		return jsast.Expression(jsast.CallName(name))
	}
	return jsast.Expression(jsast.CallName(name, jsast.Strs(args...)))
}
