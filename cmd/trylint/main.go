// Command trylint reports tryutils directive calls that were never
// expanded. Such calls panic when reached.
//
//	go run github.com/zacklukem/try-utils/cmd/trylint ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/zacklukem/try-utils/internal/check"
)

func main() {
	singlechecker.Main(check.Analyzer)
}
