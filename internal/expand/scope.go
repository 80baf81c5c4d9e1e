package expand

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
)

// site is the statement a directive call is rewritten in place of.
type site struct {
	stmt ast.Stmt
	spec *ast.ValueSpec // set for var declarations
}

// statementOf finds the statement that consists of call: an expression
// statement, a single assignment, or a single var declaration, directly in
// a statement list. path is call's enclosing path, innermost first.
func statementOf(call *ast.CallExpr, path []ast.Node) (site, bool) {
	var (
		s      site
		holder ast.Node
	)
	switch p := path[1].(type) {
	case *ast.ExprStmt:
		s.stmt = p
		holder = at(path, 2)
	case *ast.AssignStmt:
		if len(p.Lhs) != 1 || len(p.Rhs) != 1 {
			return site{}, false
		}
		s.stmt = p
		holder = at(path, 2)
	case *ast.ValueSpec:
		if len(p.Names) != 1 || len(p.Values) != 1 {
			return site{}, false
		}
		gen, ok := at(path, 2).(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR || len(gen.Specs) != 1 {
			return site{}, false
		}
		decl, ok := at(path, 3).(*ast.DeclStmt)
		if !ok {
			return site{}, false
		}
		s.stmt, s.spec = decl, p
		holder = at(path, 4)
	default:
		return site{}, false
	}
	return s, inStatementList(holder, s.stmt)
}

func at(path []ast.Node, i int) ast.Node {
	if i < len(path) {
		return path[i]
	}
	return nil
}

func inStatementList(holder ast.Node, stmt ast.Stmt) bool {
	var list []ast.Stmt
	switch h := holder.(type) {
	case *ast.BlockStmt:
		list = h.List
	case *ast.CaseClause:
		list = h.Body
	case *ast.CommClause:
		list = h.Body
	default:
		return false
	}
	for _, s := range list {
		if s == stmt {
			return true
		}
	}
	return false
}

// enclosingFunc returns the type of the innermost function around path.
func enclosingFunc(path []ast.Node) *ast.FuncType {
	for _, n := range path {
		switch f := n.(type) {
		case *ast.FuncLit:
			return f.Type
		case *ast.FuncDecl:
			return f.Type
		}
	}
	return nil
}

// returnValues checks the Return fallback against the enclosing function's
// results and returns the fallback source texts.
func (x *expander) returnValues(call *ast.CallExpr, path []ast.Node) ([]string, bool) {
	fn := enclosingFunc(path)
	if fn == nil {
		x.errorf(call.Pos(), ErrCodePosition, "%s outside a function", KindReturn.callName())
		return nil, false
	}

	results, named := 0, false
	if fn.Results != nil {
		for _, field := range fn.Results.List {
			if len(field.Names) == 0 {
				results++
				continue
			}
			results += len(field.Names)
			named = true
		}
	}

	fallback := call.Args[1:]
	switch {
	case len(fallback) == 0 && (results == 0 || named):
		// bare return
	case len(fallback) == 0:
		x.errorf(call.Pos(), ErrCodeFallback,
			"function returns %d value(s); %s needs a fallback", results, KindReturn.callName())
		return nil, false
	case results == 0:
		x.errorf(fallback[0].Pos(), ErrCodeFallback,
			"function returns no values; %s takes no fallback", KindReturn.callName())
		return nil, false
	case len(fallback) == results:
	case len(fallback) == 1 && isCall(fallback[0]):
		// a multi-value call feeding all results
	default:
		x.errorf(fallback[0].Pos(), ErrCodeFallback,
			"%s has %d fallback value(s), function returns %d", KindReturn.callName(), len(fallback), results)
		return nil, false
	}

	texts := make([]string, len(fallback))
	for i, e := range fallback {
		texts[i] = x.text(e)
	}
	return texts, true
}

func isCall(e ast.Expr) bool {
	_, ok := ast.Unparen(e).(*ast.CallExpr)
	return ok
}

// jumpTarget resolves the loop a Continue or Break leaves and returns the
// label the emitted statement must carry ("" for the innermost loop).
func (x *expander) jumpTarget(call *ast.CallExpr, kind Kind, path []ast.Node) (string, bool) {
	if len(call.Args) > 2 {
		x.errorf(call.Args[2].Pos(), ErrCodeArgs, "%s takes a value and an optional label", kind.callName())
		return "", false
	}
	label := ""
	if len(call.Args) == 2 {
		var err error
		if label, err = labelArg(call.Args[1]); err != nil {
			x.errorf(call.Args[1].Pos(), ErrCodeArgs, "%s: %v", kind.callName(), err)
			return "", false
		}
	}

	crossed := false // a switch or select lies between the call and the loop
	for i, n := range path {
		switch s := n.(type) {
		case *ast.FuncLit, *ast.FuncDecl:
			return "", x.noTarget(call, kind, label)
		case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			crossed = true
		case *ast.LabeledStmt:
			if label != "" && s.Label.Name == label && !isLoop(s.Stmt) {
				x.errorf(call.Args[1].Pos(), ErrCodeLabel, "label %q does not name a loop", label)
				return "", false
			}
		case *ast.ForStmt, *ast.RangeStmt:
			loop := s.(ast.Stmt)
			name := ""
			if ls, ok := at(path, i+1).(*ast.LabeledStmt); ok && ls.Stmt == loop {
				name = ls.Label.Name
			}
			if label != "" {
				if name == label {
					return label, true
				}
				continue
			}
			// An unlabelled break inside a switch or select would only
			// leave the switch.
			if kind == KindBreak && crossed {
				if name == "" {
					name = x.loopLabel(loop)
				}
				return name, true
			}
			return "", true
		}
	}
	return "", x.noTarget(call, kind, label)
}

func (x *expander) noTarget(call *ast.CallExpr, kind Kind, label string) bool {
	if label == "" {
		x.errorf(call.Pos(), ErrCodeNoLoop, "%s outside a loop", kind.callName())
	} else {
		x.errorf(call.Args[1].Pos(), ErrCodeLabel, "label %q does not name an enclosing loop", label)
	}
	return false
}

// loopLabel returns the label introduced for an unlabelled loop, inserting
// it the first time it is needed.
func (x *expander) loopLabel(loop ast.Stmt) string {
	if name, ok := x.loopLabels[loop]; ok {
		return name
	}
	name := fmt.Sprintf("%sLoop%d", x.opts.TempPrefix, len(x.loopLabels)+1)
	x.loopLabels[loop] = name
	start := x.offset(loop.Pos())
	x.edits = append(x.edits, edit{start: start, end: start, text: name + ":\n"})
	return name
}

func isLoop(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.ForStmt, *ast.RangeStmt:
		return true
	}
	return false
}

func labelArg(e ast.Expr) (string, error) {
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", fmt.Errorf("label must be a string literal")
	}
	label, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", fmt.Errorf("label %s: %w", lit.Value, err)
	}
	if !token.IsIdentifier(label) || label == "_" {
		return "", fmt.Errorf("label %q is not a valid identifier", label)
	}
	return label, nil
}
