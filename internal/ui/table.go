package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Column describes one table column.
type Column struct {
	Header string
	Align  lipgloss.Position
	Key    bool // render body cells with the Key style

	// MaxWidth wraps cells wider than this many cells (0 = no limit).
	MaxWidth int
}

// Table accumulates rows and renders them inside a double-line frame with a
// header row. Columns size to their widest cell.
type Table struct {
	columns []Column
	rows    [][]string
	styles  Styles
}

// NewTable creates an empty table.
func NewTable(styles Styles, columns ...Column) *Table {
	return &Table{columns: columns, styles: styles}
}

// AddRow appends a row. Missing cells render empty and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = t.fit(i, cells[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Len reports the number of body rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the table, or "" when it has no rows.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Header
	}

	tbl := table.New().
		Border(lipgloss.DoubleBorder()).
		BorderStyle(t.styles.Border).
		Headers(headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col >= len(t.columns) {
				return t.styles.Header
			}
			c := t.columns[col]
			if c.Key {
				return t.styles.Key.Align(c.Align)
			}
			return t.styles.Cell.Align(c.Align)
		})

	return tbl.String() + "\n"
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func (t *Table) fit(col int, cell string) string {
	limit := t.columns[col].MaxWidth
	if limit <= 0 || lipgloss.Width(cell) <= limit {
		return cell
	}
	wrapped := wrap.String(wordWrap(cell, limit), limit)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// wordWrap breaks at spaces only, so "POSIX.1-2001" stays whole.
func wordWrap(s string, limit int) string {
	w := wordwrap.NewWriter(limit)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(s))
	_ = w.Close()
	return w.String()
}

// WriteLine writes fields separated by single spaces.
func WriteLine(w io.Writer, fields ...string) error {
	_, err := fmt.Fprintln(w, strings.Join(fields, " "))
	return err
}
