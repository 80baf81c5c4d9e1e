package tryutils

import (
	"errors"
	"fmt"
)

// ImportPath is the import path tryexpand recognizes directives from.
const ImportPath = "github.com/zacklukem/try-utils"

// ErrNotExpanded is wrapped by the panic value of a directive that was
// executed instead of being expanded by tryexpand.
var ErrNotExpanded = errors.New("tryutils: directive was not expanded")

// Return yields the payload of v. When v is absent the enclosing function
// returns fallback, or returns bare when no fallback is given.
//
// Return is a directive: tryexpand replaces the call with the branch it
// describes. Calling it at run time panics.
func Return[T any](v Optional[T], fallback ...any) T {
	panic(notExpanded("Return"))
}

// Continue yields the payload of v. When v is absent the innermost
// enclosing loop, or the loop named by label, moves on to its next
// iteration.
//
// Continue is a directive: tryexpand replaces the call with the branch it
// describes. Calling it at run time panics.
func Continue[T any](v Optional[T], label ...string) T {
	panic(notExpanded("Continue"))
}

// Break yields the payload of v. When v is absent the innermost enclosing
// loop, or the loop named by label, terminates.
//
// Break is a directive: tryexpand replaces the call with the branch it
// describes. Calling it at run time panics.
func Break[T any](v Optional[T], label ...string) T {
	panic(notExpanded("Break"))
}

func notExpanded(name string) error {
	return fmt.Errorf("%w: tryutils.%s (run tryexpand on this file)", ErrNotExpanded, name)
}
