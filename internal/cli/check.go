package cli

import "github.com/spf13/cobra"

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpandOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify generated files are up to date",
		Long: `Expand every *.try.go file in memory and compare the result with
the generated file on disk. Nothing is written.

Exits 1 when any generated file is missing or stale, and 2 when a
source fails to expand. Intended for CI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(opts, args, true, cmd)
		},
	}

	addExpandFlags(cmd, opts)

	return cmd
}
