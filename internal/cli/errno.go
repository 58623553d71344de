package cli

import (
	"github.com/spf13/cobra"

	"lookup/internal/errno"
)

// NewErrnoCommand builds the errno tool.
func NewErrnoCommand() *cobra.Command {
	opts := &options{}
	cmd := newCommand(&cobra.Command{
		Use:   "errno [query...]",
		Short: "A simple utility to look up Linux error numbers (errno)",
		Long: `Look up Linux error numbers by value or symbolic name.

Each query is an errno value (e.g. "2") or a symbolic name (e.g. "ENOENT").
Descriptions follow the Linux man-pages; --libc shows the strerror(3) text instead.`,
		Example: `  errno 2
  errno ENOENT EAGAIN
  errno --list --simple`,
	}, opts, func(cmd *cobra.Command, args []string, e *env) error {
		queries := args
		if opts.list {
			queries = errno.Table.Names()
		}
		d := errno.Describer(e.cfg.Description.Native())
		return runDescribed(cmd.OutOrStdout(), e, errno.Table, d, queries, 0)
	})

	cmd.Flags().BoolVar(&opts.libc, "libc", false, "Display the description using strerror(3)")
	return cmd
}
