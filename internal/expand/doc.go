// Package expand rewrites tryutils directive calls into the control flow
// they describe.
//
// A directive call must be a whole statement: the sole right-hand side of
// an assignment or var declaration, or an expression statement. Each one
// becomes a normalization followed by a branch:
//
//	x := tryutils.Continue(v, "outer")
//
// expands to
//
//	_tryv1, _tryok1 := tryutils.Get(v)
//	if !_tryok1 {
//		continue outer
//	}
//	x := _tryv1
//
// Source text outside the rewritten statements is kept as written, so
// comments survive. The file's //go:build constraint is replaced by a
// "Code generated" header and the result is gofmt'ed.
//
// # Static checks
//
// Misuse is reported before any output is produced, with positions:
//
//   - E200: the file does not parse
//   - E201: Continue or Break outside a loop of the current function
//   - E202: Return fallback does not match the function's results
//   - E203: label does not name an enclosing loop
//   - E204: directive in an unsupported position
//   - E205: malformed directive arguments
//   - E206: missing build constraint
//   - E207: dot import of tryutils
package expand
