package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zacklukem/try-utils/internal/generate"
)

// ExpandOptions holds flags for the expand and check commands.
type ExpandOptions struct {
	*RootOptions
	DryRun  bool
	NoCache bool
	Cache   string // overrides the config cache path
	Jobs    int
}

// NewExpandCommand creates the expand command.
func NewExpandCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpandOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expand [paths...]",
		Short: "Expand directive sources into generated Go files",
		Long: `Expand every *.try.go file under the given paths (default ".").

Each source is rewritten into a *_try.go file next to it. Expansion
errors are printed with their positions and no output is written for
the failing file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(opts, args, false, cmd)
		},
	}

	addExpandFlags(cmd, opts)
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "expand without writing files")

	return cmd
}

func addExpandFlags(cmd *cobra.Command, opts *ExpandOptions) {
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "ignore the expansion cache")
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "cache database path (overrides config)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "files expanded concurrently (default GOMAXPROCS)")
}

func runExpand(opts *ExpandOptions, paths []string, check bool, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cfg, err := opts.loadConfig(formatter)
	if err != nil {
		return err
	}

	cachePath := cfg.Cache
	if opts.Cache != "" {
		cachePath = opts.Cache
	}
	if opts.NoCache {
		cachePath = ""
	}
	store, err := openCache(formatter, cachePath)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	report, err := generate.Run(cmd.Context(), generate.Options{
		Roots:  paths,
		Config: cfg,
		Cache:  store,
		DryRun: opts.DryRun,
		Check:  check,
		Jobs:   opts.Jobs,
		Logger: opts.logger,
	})
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, generate.ErrNotSource):
		return fail(formatter, ExitCommandError, ErrCodeNotFound, "path not found", err)
	case err != nil:
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "expansion stopped", err)
	}

	if report.Failed > 0 {
		return outputExpandFailures(formatter, report)
	}
	if check && report.Stale > 0 {
		return outputStale(formatter, report)
	}
	return outputExpandSuccess(formatter, report, check)
}

// outputExpandSuccess prints the per-file summary.
func outputExpandSuccess(formatter *OutputFormatter, report *generate.Report, check bool) error {
	if formatter.JSON() {
		return formatter.Success(report)
	}

	w := formatter.Writer
	switch {
	case check:
		fmt.Fprintf(w, "✓ %d generated file(s) up to date\n", len(report.Files))
	case report.DryRun:
		fmt.Fprintf(w, "✓ Would expand %d file(s), %d unchanged, %d cached\n",
			report.Expanded, report.Unchanged, report.Cached)
	default:
		fmt.Fprintf(w, "✓ Expanded %d file(s), %d unchanged, %d cached\n",
			report.Expanded, report.Unchanged, report.Cached)
	}

	for _, f := range report.Files {
		if f.Status != generate.StatusExpanded {
			continue
		}
		fmt.Fprintf(w, "  %s → %s (%d directive(s))\n", f.Source, f.Output, f.DirectiveCount)
	}
	return nil
}

// outputExpandFailures prints every positioned expansion error.
func outputExpandFailures(formatter *OutputFormatter, report *generate.Report) error {
	failures := report.Failures()
	message := fmt.Sprintf("expansion failed in %d file(s)", len(failures))

	if formatter.JSON() {
		_ = formatter.Failure(ErrCodeExpandFailed, message, nil, report)
		return NewExitError(ExitCommandError, message)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "✗ Expansion failed in %d file(s)\n\n", len(failures))
	for _, f := range failures {
		if len(f.Errors) == 0 {
			fmt.Fprintf(w, "%s\n  %s: %v\n\n", f.Source, ErrCodeGeneric, f.Err)
			continue
		}
		for _, e := range f.Errors {
			pos := e.Pos.String()
			if !e.Pos.IsValid() {
				pos = f.Source
			}
			fmt.Fprintf(w, "%s\n  %s: %s\n\n", pos, e.Code, e.Message)
		}
	}
	return NewExitError(ExitCommandError, message)
}

// outputStale lists the outputs check found missing or out of date.
func outputStale(formatter *OutputFormatter, report *generate.Report) error {
	message := fmt.Sprintf("%d generated file(s) missing or stale; run tryexpand expand", report.Stale)

	var stale []string
	for _, f := range report.Files {
		if f.Status == generate.StatusStale {
			stale = append(stale, f.Output)
		}
	}

	if formatter.JSON() {
		_ = formatter.Failure(ErrCodeStale, message, stale, report)
		return NewExitError(ExitFailure, message)
	}

	fmt.Fprintf(formatter.Writer, "✗ %s\n", message)
	for _, path := range stale {
		fmt.Fprintf(formatter.Writer, "  %s\n", path)
	}
	return NewExitError(ExitFailure, message)
}
