package expand

import (
	"errors"
	"fmt"
	"go/token"
)

// Expansion error codes (E200-E299).
const (
	ErrCodeParse    = "E200" // source does not parse
	ErrCodeNoLoop   = "E201" // Continue/Break outside a loop
	ErrCodeFallback = "E202" // Return fallback does not fit the function results
	ErrCodeLabel    = "E203" // label does not name an enclosing loop
	ErrCodePosition = "E204" // directive is not a whole statement
	ErrCodeArgs     = "E205" // malformed directive arguments
	ErrCodeBuildTag = "E206" // missing or unexpected build constraint
	ErrCodeImport   = "E207" // unsupported import form
	ErrCodeFormat   = "E208" // expanded output failed to format
)

// Error is a positioned expansion error.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Pos     token.Position `json:"pos"`
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
	}
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s: %s: %s", e.Pos.Filename, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errors flattens an error returned by File into its *Error parts.
// Errors that are not *Error are skipped.
func Errors(err error) []*Error {
	if err == nil {
		return nil
	}
	var out []*Error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Errors(e)...)
		}
		return out
	}
	var expandErr *Error
	if errors.As(err, &expandErr) {
		out = append(out, expandErr)
	}
	return out
}

func newError(fset *token.FileSet, pos token.Pos, code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     fset.Position(pos),
	}
}
