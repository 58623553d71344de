package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lookup/internal/ascii"
	"lookup/internal/logging"
	"lookup/internal/lookup"
	"lookup/internal/ui"
)

// NewASCIICommand builds the ascii tool.
func NewASCIICommand() *cobra.Command {
	opts := &options{}
	cmd := newCommand(&cobra.Command{
		Use:   "ascii [query...]",
		Short: "A simple utility to look up ASCII codes",
		Long: `Look up ASCII characters and their codes.

Each query is a single character (e.g. "A"), an ASCII number (e.g. "65",
"0x41", "0o101", "0b1000001"), or caret notation (e.g. "^@").`,
		Example: `  ascii A 0x41 ^C
  ascii -d 7
  ascii --list --unicode`,
	}, opts, func(cmd *cobra.Command, args []string, e *env) error {
		var matches []lookup.Match
		if opts.list {
			for _, entry := range ascii.Table.Entries() {
				matches = append(matches, lookup.Match{Found: true, Entry: entry})
			}
		} else {
			log := logging.For(e.logger, logging.CategoryResolve)
			for _, q := range args {
				m := ascii.Resolve(q, opts.digit)
				if !m.Found {
					log.Debug("unknown query", zap.String("query", q))
				}
				matches = append(matches, m)
			}
		}

		r := e.newReport(cmd.OutOrStdout(), asciiColumns(opts.unicode)...)
		for _, m := range matches {
			if err := r.add(ascii.Cells(m, opts.unicode)...); err != nil {
				return err
			}
		}
		return r.flush()
	})

	cmd.Flags().BoolVarP(&opts.digit, "digit", "d", false, "Look up ASCII digits")
	cmd.Flags().BoolVarP(&opts.unicode, "unicode", "u", false, "Show the Unicode character name")
	return cmd
}

func asciiColumns(withUnicode bool) []ui.Column {
	cols := make([]ui.Column, 0, len(ascii.Headers)+1)
	for i, h := range ascii.Headers {
		c := ui.Column{Header: h, Align: lipgloss.Right}
		if i == 0 {
			c = ui.Column{Header: h, Align: lipgloss.Left, Key: true}
		}
		cols = append(cols, c)
	}
	if withUnicode {
		cols = append(cols, ui.Column{Header: ascii.UnicodeHeader})
	}
	return cols
}
