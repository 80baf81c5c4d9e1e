package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zacklukem/try-utils/internal/cache"
)

// CacheOptions holds flags for the cache commands.
type CacheOptions struct {
	*RootOptions
	Cache string
}

// NewCacheCommand creates the cache command group.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CacheOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the expansion cache",
	}
	cmd.PersistentFlags().StringVar(&opts.Cache, "cache", "", "cache database path (overrides config)")

	cmd.AddCommand(&cobra.Command{
		Use:           "stats",
		Short:         "Show cache entries and the last run",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheStats(opts, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "clear",
		Short:         "Delete all cache entries and runs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheClear(opts, cmd)
		},
	})

	return cmd
}

// open resolves the cache path from the flag or config and opens it.
func (o *CacheOptions) open(formatter *OutputFormatter) (*cache.Store, error) {
	path := o.Cache
	if path == "" {
		cfg, err := o.loadConfig(formatter)
		if err != nil {
			return nil, err
		}
		path = cfg.Cache
	}
	if path == "" {
		return nil, fail(formatter, ExitCommandError, ErrCodeCache,
			"no cache configured; set cache in .tryexpand.yaml or pass --cache", nil)
	}
	return openCache(formatter, path)
}

func runCacheStats(opts *CacheOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	store, err := opts.open(formatter)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeCache, "reading cache", err)
	}

	if formatter.JSON() {
		return formatter.Success(stats)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Entries:    %d\n", stats.Entries)
	fmt.Fprintf(w, "Directives: %d\n", stats.Directives)
	fmt.Fprintf(w, "Runs:       %d\n", stats.Runs)
	if run := stats.LastRun; run != nil {
		fmt.Fprintf(w, "Last run:   %s at %s\n", run.ID, run.StartedAt.Format(time.RFC3339))
		if run.FinishedAt == nil {
			fmt.Fprintln(w, "            (did not finish)")
		} else {
			fmt.Fprintf(w, "            %d file(s), %d expanded, %d failed\n", run.Files, run.Expanded, run.Failed)
		}
	}
	return nil
}

func runCacheClear(opts *CacheOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	store, err := opts.open(formatter)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(cmd.Context())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeCache, "clearing cache", err)
	}

	if formatter.JSON() {
		return formatter.Success(map[string]int64{"removed": n})
	}
	fmt.Fprintf(formatter.Writer, "✓ Removed %d cache entr%s\n", n, plural(n, "y", "ies"))
	return nil
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
