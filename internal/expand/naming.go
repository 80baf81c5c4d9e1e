package expand

import (
	"path/filepath"
	"strings"
)

// DefaultSourceSuffix marks files holding directives.
const DefaultSourceSuffix = ".try.go"

// OutputPath returns the path of the file generated from source:
//
//	parse.try.go      -> parse_try.go
//	parse_test.try.go -> parse_try_test.go
//
// The second result is false when source does not end in suffix or has no
// base name before it.
func OutputPath(source, suffix string) (string, bool) {
	if suffix == "" {
		suffix = DefaultSourceSuffix
	}
	if !strings.HasSuffix(source, suffix) {
		return "", false
	}
	base := strings.TrimSuffix(source, suffix)
	if name := filepath.Base(base); name == "" || name == "." || strings.HasSuffix(base, string(filepath.Separator)) {
		return "", false
	}

	stem := strings.TrimSuffix(strings.TrimPrefix(suffix, "."), ".go")
	if test := strings.TrimSuffix(base, "_test"); test != base {
		return test + "_" + stem + "_test.go", true
	}
	return base + "_" + stem + ".go", true
}
