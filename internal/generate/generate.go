package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zacklukem/try-utils/internal/cache"
	"github.com/zacklukem/try-utils/internal/config"
	"github.com/zacklukem/try-utils/internal/expand"
)

// Options controls a Run.
type Options struct {
	Roots  []string       // directories or source files; defaults to "."
	Config *config.Config // defaults to config.Default()
	Cache  *cache.Store   // optional
	DryRun bool           // expand without writing
	Check  bool           // report stale outputs without writing
	Jobs   int            // files expanded concurrently; defaults to GOMAXPROCS
	Logger *slog.Logger   // defaults to slog.Default()
}

func (o Options) withDefaults() Options {
	if len(o.Roots) == 0 {
		o.Roots = []string{"."}
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type generator struct {
	Options
	fingerprint string
	runID       string
}

// record reports whether results are written to the cache.
func (g *generator) record() bool {
	return g.Cache != nil && !g.Check && !g.DryRun
}

// Run expands every directive source under opts.Roots.
//
// Problems with individual files are reported per file in the Report;
// the error is reserved for failures that stop the run: discovery, the
// cache, or ctx being canceled.
func Run(ctx context.Context, opts Options) (*Report, error) {
	g := &generator{Options: opts.withDefaults()}
	g.fingerprint = g.Config.Fingerprint()

	sources, err := Discover(g.Roots, g.Config)
	if err != nil {
		return nil, err
	}
	g.Logger.Debug("discovered sources", "roots", g.Roots, "count", len(sources))

	if g.record() {
		if g.runID, err = g.Cache.BeginRun(ctx); err != nil {
			return nil, err
		}
	}

	report := &Report{
		RunID:  g.runID,
		DryRun: g.DryRun,
		Files:  make([]FileReport, len(sources)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Jobs)
	for i, source := range sources {
		eg.Go(func() (err error) {
			if err := egCtx.Err(); err != nil {
				return err
			}
			report.Files[i], err = g.file(egCtx, source)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		// Close the run with what was processed so it is not left open.
		if g.record() {
			report.tally()
			err = errors.Join(err, g.finishRun(context.WithoutCancel(ctx), report))
		}
		return nil, err
	}
	report.tally()

	if g.record() {
		if err := g.finishRun(ctx, report); err != nil {
			return nil, err
		}
	}

	g.Logger.Debug("run finished",
		"run_id", report.RunID,
		"expanded", report.Expanded,
		"unchanged", report.Unchanged,
		"cached", report.Cached,
		"stale", report.Stale,
		"failed", report.Failed,
	)
	return report, nil
}

func (g *generator) finishRun(ctx context.Context, report *Report) error {
	counts := cache.Counts{Expanded: report.Expanded, Failed: report.Failed}
	for _, f := range report.Files {
		if f.Status != "" {
			counts.Files++
		}
	}
	return g.Cache.FinishRun(ctx, g.runID, counts)
}

// file processes one source. The error is non-nil only for cache
// failures; everything else is recorded in the FileReport.
func (g *generator) file(ctx context.Context, source string) (FileReport, error) {
	fr := FileReport{Source: source}
	fr.Output, _ = expand.OutputPath(source, g.Config.SourceSuffix)

	src, err := os.ReadFile(source)
	if err != nil {
		return g.failed(fr, err), nil
	}

	existing, err := os.ReadFile(fr.Output)
	haveOutput := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return g.failed(fr, err), nil
	}

	key, err := filepath.Abs(source)
	if err != nil {
		return g.failed(fr, err), nil
	}
	sourceHash := cache.SourceHash(src)

	// Check compares against a fresh expansion and never trusts the cache.
	if g.Cache != nil && haveOutput && !g.Check {
		entry, ok, err := g.Cache.Lookup(ctx, key)
		if err != nil {
			return fr, err
		}
		if ok && entry.Fresh(sourceHash, g.fingerprint, cache.OutputHash(existing)) {
			fr.Status = StatusCached
			fr.DirectiveCount = entry.Directives
			g.Logger.Debug("cache hit", "source", source)
			return fr, nil
		}
	}

	res, err := expand.File(source, src, g.Config.ExpandOptions())
	if err != nil {
		fr = g.failed(fr, err)
		fr.Errors = expand.Errors(err)
		return fr, nil
	}
	fr.Directives = res.Directives
	fr.DirectiveCount = len(res.Directives)

	switch {
	case haveOutput && bytes.Equal(existing, res.Output):
		fr.Status = StatusUnchanged
	case g.Check:
		fr.Status = StatusStale
		g.Logger.Debug("stale output", "source", source, "output", fr.Output, "missing", !haveOutput)
		return fr, nil
	default:
		fr.Status = StatusExpanded
		if !g.DryRun {
			if err := os.WriteFile(fr.Output, res.Output, 0o644); err != nil {
				return g.failed(fr, fmt.Errorf("writing output: %w", err)), nil
			}
		}
		g.Logger.Debug("expanded", "source", source, "output", fr.Output,
			"directives", fr.DirectiveCount, "dry_run", g.DryRun)
	}

	if g.record() {
		err := g.Cache.Record(ctx, cache.Entry{
			SourcePath: key,
			SourceHash: sourceHash,
			ConfigHash: g.fingerprint,
			OutputPath: fr.Output,
			OutputHash: cache.OutputHash(res.Output),
			Directives: fr.DirectiveCount,
			RunID:      g.runID,
		})
		if err != nil {
			return fr, err
		}
	}
	return fr, nil
}

func (g *generator) failed(fr FileReport, err error) FileReport {
	fr.Status = StatusFailed
	fr.Err = err
	g.Logger.Warn("expansion failed", "source", fr.Source, "error", err)
	return fr
}
