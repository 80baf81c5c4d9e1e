// Package check provides an analyzer that reports directive calls left in
// compiled code. Such calls were never expanded and panic when reached.
package check

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	tryutils "github.com/zacklukem/try-utils"
)

var Analyzer = &analysis.Analyzer{
	Name:     "tryexpand",
	Doc:      "report tryutils.Return, Continue and Break calls that were not expanded by tryexpand",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var directives = map[string]bool{
	"Return":   true,
	"Continue": true,
	"Break":    true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	// The package's own tests call the markers to check that they panic.
	if strings.TrimSuffix(pass.Pkg.Path(), "_test") == tryutils.ImportPath {
		return nil, nil
	}

	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("`inspect.Analyzer` hasn't been run or didn't return AST for the package `%v`", pass.Pkg.Name())
	}
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || !isDirective(fn) {
			return
		}
		pass.Report(analysis.Diagnostic{
			Pos:      call.Pos(),
			End:      call.End(),
			Category: "tryexpand",
			Message: fmt.Sprintf("tryutils.%s is not expanded and panics when reached; "+
				"move it to a //go:build tryexpand source and run tryexpand", fn.Name()),
		})
	})
	return nil, nil
}

func isDirective(fn *types.Func) bool {
	if fn.Pkg() == nil || fn.Pkg().Path() != tryutils.ImportPath {
		return false
	}
	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return false
	}
	return directives[fn.Name()]
}
