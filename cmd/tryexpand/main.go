// Command tryexpand expands tryutils directives in *.try.go files.
//
//	//go:generate go run github.com/zacklukem/try-utils/cmd/tryexpand expand .
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/zacklukem/try-utils/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)

	// ExitErrors were already reported by the command; cobra and flag
	// errors were not.
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "tryexpand:", err)
	}
	return cli.GetExitCode(err)
}
