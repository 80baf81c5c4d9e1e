// Package tryutils provides try guards for Go: directives that unwrap a
// presence/absence value and, when the value is absent, leave the enclosing
// function, continue a loop or break out of a loop.
//
// # Normalization
//
// Every participating value implements [Optional], which normalizes it to
// the canonical [Option]:
//
//   - [Option]: already present/absent; maps through unchanged.
//   - [Result]: success maps to Some, failure maps to None. The error is
//     discarded; read it with [Result.Error] before using a directive if it
//     matters.
//   - Any other type with an Option() Option[T] method.
//
// [FromPair], [FromPtr] and [Of] adapt the usual Go shapes (comma-ok
// results, nil-able pointers and (T, error) returns).
//
// # Directives
//
//   - [Return]: payload, or return from the enclosing function with the
//     given fallback values (bare return when none are given).
//   - [Continue]: payload, or continue the innermost loop or the labelled loop.
//   - [Break]: payload, or break the innermost loop or the labelled loop.
//
// A Go function cannot return from its caller, so directives are expanded
// at the call site by the tryexpand tool. Write them in a file named
// name.try.go guarded by the tryexpand build constraint:
//
//	//go:build tryexpand
//
//	package parse
//
//	import tryutils "github.com/zacklukem/try-utils"
//
//	func port(s string) int {
//		n := tryutils.Return(tryutils.Of(strconv.Atoi(s)), 8080)
//		return n
//	}
//
// and run
//
//	go run github.com/zacklukem/try-utils/cmd/tryexpand expand .
//
// which writes name_try.go, where the call has become
//
//	_tryv1, _tryok1 := tryutils.Get(tryutils.Of(strconv.Atoi(s)))
//	if !_tryok1 {
//		return 8080
//	}
//	n := _tryv1
//
// Loop labels are passed as string literals:
//
//	outer:
//	for _, row := range rows {
//		for _, cell := range row {
//			v := tryutils.Continue(parse(cell), "outer")
//			...
//		}
//	}
//
// Misuse (a directive outside a loop, an unknown label, a missing
// fallback) is reported by tryexpand with the offending position. A
// directive that reaches run time unexpanded panics with [ErrNotExpanded].
package tryutils

//go:generate go run ./cmd/tryexpand expand .
