package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"lookup/internal/ui"
)

// report writes rows either immediately as lines or, in table mode, once at
// flush.
type report struct {
	w      io.Writer
	simple bool
	table  *ui.Table
}

func (e *env) newReport(w io.Writer, columns ...ui.Column) *report {
	return &report{
		w:      w,
		simple: e.cfg.Output.Simple,
		table:  ui.NewTable(e.styles, columns...),
	}
}

func (r *report) add(cells ...string) error {
	if r.simple {
		return ui.WriteLine(r.w, cells...)
	}
	r.table.AddRow(cells...)
	return nil
}

func (r *report) flush() error {
	if r.simple {
		return nil
	}
	_, err := r.table.WriteTo(r.w)
	return err
}

// describedColumns are the name/number/description columns of errno and signal.
func describedColumns(descriptionWidth int) []ui.Column {
	return []ui.Column{
		{Header: "name", Key: true},
		{Header: "number", Align: lipgloss.Left},
		{Header: "description", MaxWidth: descriptionWidth},
	}
}
