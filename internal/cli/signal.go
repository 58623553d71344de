package cli

import (
	"github.com/spf13/cobra"

	"lookup/internal/signal"
)

// NewSignalCommand builds the signal tool.
func NewSignalCommand() *cobra.Command {
	opts := &options{}
	cmd := newCommand(&cobra.Command{
		Use:   "signal [query...]",
		Short: "A simple utility to look up Linux signals",
		Long: `Look up Linux signals by number or name.

Each query is a signal number (e.g. "2"), a signal name (e.g. "SIGINT"),
or, with --status, a shell exit status (e.g. "130").`,
		Example: `  signal 9
  signal SIGTERM SIGKILL
  signal -s 130`,
	}, opts, func(cmd *cobra.Command, args []string, e *env) error {
		queries := args
		if opts.list {
			queries = signal.Table.Names()
		}
		d := signal.Describer(e.cfg.Description.Native())
		return runDescribed(cmd.OutOrStdout(), e, signal.Table, d, queries, signal.Offset(opts.status))
	})

	cmd.Flags().BoolVarP(&opts.status, "status", "s", false, "Interpret numbers as status code instead of signal number")
	cmd.Flags().BoolVar(&opts.libc, "libc", false, "Display the description using strsignal(3)")
	return cmd
}
