// Package cli implements the tryexpand command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zacklukem/try-utils/internal/cache"
	"github.com/zacklukem/try-utils/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // config file path; "" looks for .tryexpand.yaml

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tryexpand CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tryexpand",
		Short: "Expand tryutils directives into plain Go",
		Long: `tryexpand rewrites tryutils.Return, Continue and Break calls in
*.try.go files into ordinary if statements, writing *_try.go files
next to them.

Sources carry a //go:build tryexpand line so only the generated files
are compiled. Run it from go:generate:

	//go:generate go run github.com/zacklukem/try-utils/cmd/tryexpand expand .`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default .tryexpand.yaml if present)")

	cmd.AddCommand(NewExpandCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewCacheCommand(opts))

	return cmd
}

// newLogger logs to w: warnings by default, everything with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// loadConfig loads the config file, printing and returning an ExitError
// on failure.
func (o *RootOptions) loadConfig(f *OutputFormatter) (*config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return nil, fail(f, ExitCommandError, ErrCodeConfig, "loading config", err)
	}
	o.logger.Debug("config loaded", "path", o.Config, "build_tag", cfg.BuildTag, "cache", cfg.Cache)
	return cfg, nil
}

// openCache opens the cache at path, creating its directory. A nil store
// and nil error are returned when path is empty.
func openCache(f *OutputFormatter, path string) (*cache.Store, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fail(f, ExitCommandError, ErrCodeCache, "creating cache directory", err)
	}
	store, err := cache.Open(path)
	if err != nil {
		return nil, fail(f, ExitCommandError, ErrCodeCache, "opening cache", err)
	}
	return store, nil
}
