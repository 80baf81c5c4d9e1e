package expand

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/scanner"
	"go/token"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	tryutils "github.com/zacklukem/try-utils"
)

const (
	// DefaultBuildTag is the build constraint that keeps directive sources
	// out of normal builds.
	DefaultBuildTag = "tryexpand"

	// DefaultTempPrefix prefixes the temporaries and labels introduced by
	// expansion.
	DefaultTempPrefix = "_try"

	// Version identifies the code File emits. Bump it whenever the output
	// for the same input changes so cached outputs are expanded again.
	Version = "1"

	// packageName is the name tryutils is imported under when unaliased.
	packageName = "tryutils"
)

// Options controls expansion.
type Options struct {
	BuildTag   string // constraint required on the source file
	TempPrefix string // prefix of generated identifiers
	ImportPath string // import path the directives come from
}

func (o Options) withDefaults() Options {
	if o.BuildTag == "" {
		o.BuildTag = DefaultBuildTag
	}
	if o.TempPrefix == "" {
		o.TempPrefix = DefaultTempPrefix
	}
	if o.ImportPath == "" {
		o.ImportPath = tryutils.ImportPath
	}
	return o
}

// Result is the outcome of expanding one file.
type Result struct {
	Output     []byte
	Directives []Directive
}

type edit struct {
	start, end int
	text       string
}

type expander struct {
	fset     *token.FileSet
	tf       *token.File
	file     *ast.File
	filename string
	src      []byte
	opts     Options

	pkg        string // local name of the tryutils import
	n          int
	edits      []edit
	loopLabels map[ast.Stmt]string
	directives []Directive
	errs       []error
}

// File expands every directive in src. filename is used for positions and
// for the generated header.
//
// All directive errors in the file are collected; the returned error then
// joins one *Error per problem (see Errors).
func File(filename string, src []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, parseError(filename, err)
	}

	x := &expander{
		fset:       fset,
		tf:         fset.File(file.Pos()),
		file:       file,
		filename:   filename,
		src:        src,
		opts:       opts,
		loopLabels: make(map[ast.Stmt]string),
	}

	if err := x.removeBuildConstraint(); err != nil {
		return nil, err
	}
	if x.pkg, err = x.importName(); err != nil {
		return nil, err
	}
	if x.pkg != "" {
		x.collect()
	}
	if len(x.errs) > 0 {
		return nil, errors.Join(x.errs...)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by tryexpand from %s. DO NOT EDIT.\n\n", filepath.Base(filename))
	out.Write(x.apply())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, &Error{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("formatting expanded source: %v", err),
			Pos:     token.Position{Filename: filename},
		}
	}

	return &Result{Output: formatted, Directives: x.directives}, nil
}

func parseError(filename string, err error) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return &Error{Code: ErrCodeParse, Message: list[0].Msg, Pos: list[0].Pos}
	}
	return &Error{Code: ErrCodeParse, Message: err.Error(), Pos: token.Position{Filename: filename}}
}

func (x *expander) offset(pos token.Pos) int {
	return x.tf.Offset(pos)
}

func (x *expander) text(n ast.Node) string {
	return string(x.src[x.offset(n.Pos()):x.offset(n.End())])
}

// removeBuildConstraint drops the //go:build line (and the blank line after
// it) that keeps the source out of normal builds. A legacy // +build line
// is dropped with it; format.Source would otherwise rebuild the //go:build
// line from it and the output would never be compiled.
func (x *expander) removeBuildConstraint() error {
	found := false
	for _, group := range x.file.Comments {
		if group.Pos() >= x.file.Package {
			break
		}
		for _, c := range group.List {
			goBuild := constraint.IsGoBuild(c.Text)
			if !goBuild && !constraint.IsPlusBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				return newError(x.fset, c.Pos(), ErrCodeBuildTag, "invalid build constraint: %v", err)
			}
			if tag, ok := expr.(*constraint.TagExpr); !ok || tag.Tag != x.opts.BuildTag {
				return newError(x.fset, c.Pos(), ErrCodeBuildTag,
					"build constraint must be exactly //go:build %s, found %q", x.opts.BuildTag, c.Text)
			}

			start, end := x.offset(c.Pos()), x.offset(c.End())
			for i := 0; i < 2 && end < len(x.src) && x.src[end] == '\n'; i++ {
				end++
			}
			x.edits = append(x.edits, edit{start: start, end: end})
			found = found || goBuild
		}
	}
	if !found {
		return &Error{
			Code:    ErrCodeBuildTag,
			Message: fmt.Sprintf("missing //go:build %s constraint", x.opts.BuildTag),
			Pos:     token.Position{Filename: x.filename},
		}
	}
	return nil
}

// importName returns the name tryutils is visible under in this file, or
// "" when the file does not use it.
func (x *expander) importName() (string, error) {
	for _, spec := range x.file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != x.opts.ImportPath {
			continue
		}
		if spec.Name == nil {
			return packageName, nil
		}
		switch spec.Name.Name {
		case "_":
			return "", nil
		case ".":
			return "", newError(x.fset, spec.Pos(), ErrCodeImport,
				"dot import of %s is not supported; import it by name", path)
		}
		return spec.Name.Name, nil
	}
	return "", nil
}

func (x *expander) collect() {
	ast.Inspect(x.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if kind, typeArgs, ok := directiveCall(x.pkg, call); ok {
			x.expand(call, kind, typeArgs)
		}
		return true
	})
}

// directiveCall reports whether call invokes one of the directives through
// the import named pkg, and returns its explicit type arguments.
func directiveCall(pkg string, call *ast.CallExpr) (Kind, []ast.Expr, bool) {
	fun := call.Fun
	var typeArgs []ast.Expr
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun, typeArgs = f.X, []ast.Expr{f.Index}
	case *ast.IndexListExpr:
		fun, typeArgs = f.X, f.Indices
	}

	sel, ok := fun.(*ast.SelectorExpr)
	if !ok {
		return 0, nil, false
	}
	// A resolved object means a local declaration shadows the import.
	id, ok := sel.X.(*ast.Ident)
	if !ok || id.Name != pkg || id.Obj != nil {
		return 0, nil, false
	}
	kind, ok := kindByName[sel.Sel.Name]
	return kind, typeArgs, ok
}

func (x *expander) errorf(pos token.Pos, code, format string, args ...any) {
	x.errs = append(x.errs, newError(x.fset, pos, code, format, args...))
}

func (x *expander) expand(call *ast.CallExpr, kind Kind, typeArgs []ast.Expr) {
	path, _ := astutil.PathEnclosingInterval(x.file, call.Pos(), call.End())
	if len(path) < 2 || path[0] != ast.Node(call) {
		x.errorf(call.Pos(), ErrCodePosition, "cannot locate %s call", kind.callName())
		return
	}

	for _, n := range path[1:] {
		if outer, ok := n.(*ast.CallExpr); ok {
			if _, _, ok := directiveCall(x.pkg, outer); ok {
				x.errorf(call.Pos(), ErrCodePosition, "%s inside the arguments of another directive", kind.callName())
				return
			}
		}
	}

	site, ok := statementOf(call, path)
	if !ok {
		x.errorf(call.Pos(), ErrCodePosition,
			"%s must be a statement or the whole right-hand side of a single assignment", kind.callName())
		return
	}

	if call.Ellipsis.IsValid() {
		x.errorf(call.Ellipsis, ErrCodeArgs, "%s does not accept a ... argument", kind.callName())
		return
	}
	if len(call.Args) == 0 {
		x.errorf(call.Rparen, ErrCodeArgs, "%s needs a value", kind.callName())
		return
	}

	var branch, label string
	if kind == KindReturn {
		fallback, ok := x.returnValues(call, path)
		if !ok {
			return
		}
		branch = "return"
		if len(fallback) > 0 {
			branch += " " + strings.Join(fallback, ", ")
		}
	} else {
		if label, ok = x.jumpTarget(call, kind, path); !ok {
			return
		}
		branch = kind.keyword()
		if label != "" {
			branch += " " + label
		}
	}

	x.n++
	v := fmt.Sprintf("%sv%d", x.opts.TempPrefix, x.n)
	okName := fmt.Sprintf("%sok%d", x.opts.TempPrefix, x.n)

	get := x.pkg + ".Get"
	if len(typeArgs) > 0 {
		args := make([]string, len(typeArgs))
		for i, t := range typeArgs {
			args[i] = x.text(t)
		}
		get += "[" + strings.Join(args, ", ") + "]"
	}
	value := x.text(call.Args[0])

	var text string
	switch s := site.stmt.(type) {
	case *ast.ExprStmt:
		text = fmt.Sprintf("if _, %s := %s(%s); !%s {\n%s\n}", okName, get, value, okName, branch)
	case *ast.AssignStmt:
		text = fmt.Sprintf("%s, %s := %s(%s)\nif !%s {\n%s\n}\n%s %s %s",
			v, okName, get, value, okName, branch, x.text(s.Lhs[0]), s.Tok, v)
	case *ast.DeclStmt:
		decl := "var " + site.spec.Names[0].Name
		if site.spec.Type != nil {
			decl += " " + x.text(site.spec.Type)
		}
		text = fmt.Sprintf("%s, %s := %s(%s)\nif !%s {\n%s\n}\n%s = %s",
			v, okName, get, value, okName, branch, decl, v)
	}

	x.edits = append(x.edits, edit{
		start: x.offset(site.stmt.Pos()),
		end:   x.offset(site.stmt.End()),
		text:  text,
	})
	x.directives = append(x.directives, Directive{
		Kind:  kind,
		Label: label,
		Pos:   x.fset.Position(call.Pos()),
	})
}

func (x *expander) apply() []byte {
	sort.SliceStable(x.edits, func(i, j int) bool {
		return x.edits[i].start < x.edits[j].start
	})

	var buf bytes.Buffer
	last := 0
	for _, e := range x.edits {
		buf.Write(x.src[last:e.start])
		buf.WriteString(e.text)
		last = e.end
	}
	buf.Write(x.src[last:])
	return buf.Bytes()
}
