package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	DisableColor()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestTable_EmptyRendersNothing(t *testing.T) {
	tbl := NewTable(DefaultStyles(), Column{Header: "name"})
	assert.Equal(t, "", tbl.Render())
	assert.Equal(t, 0, tbl.Len())
}

func TestTable_Frame(t *testing.T) {
	tbl := NewTable(DefaultStyles(),
		Column{Header: "name", Key: true},
		Column{Header: "number"},
		Column{Header: "description"},
	)
	tbl.AddRow("ENOENT", "2", "No such file or directory")
	tbl.AddRow("-", "999", "Unknown error")

	out := tbl.Render()
	t.Logf("table:\n%s", out)

	ls := lines(out)
	require.Len(t, ls, 6, "top, header, separator, two rows, bottom")
	assert.True(t, strings.HasPrefix(ls[0], "╔"))
	assert.True(t, strings.HasPrefix(ls[len(ls)-1], "╚"))
	assert.Contains(t, ls[1], "description")
	assert.Contains(t, ls[3], "ENOENT")
	assert.Contains(t, ls[4], "Unknown error")

	width := lipgloss.Width(ls[0])
	for _, l := range ls {
		assert.Equal(t, width, lipgloss.Width(l), "ragged line %q", l)
	}
}

func TestTable_RightAlign(t *testing.T) {
	tbl := NewTable(DefaultStyles(),
		Column{Header: "char"},
		Column{Header: "dec", Align: lipgloss.Right},
	)
	tbl.AddRow("A", "65")
	tbl.AddRow("DEL", "127")

	ls := lines(tbl.Render())
	require.Len(t, ls, 6)
	assert.Contains(t, ls[3], "  65 ║")
	assert.Contains(t, ls[4], " 127 ║")
}

func TestTable_WrapsLongCells(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 20)
	tbl := NewTable(DefaultStyles(),
		Column{Header: "name"},
		Column{Header: "description", MaxWidth: 30},
	)
	tbl.AddRow("EMFILE", long)

	ls := lines(tbl.Render())
	assert.Greater(t, len(ls), 5, "long cell must span several lines")
	for _, l := range ls {
		// frame + name column + padding + 30 wrapped cells
		assert.LessOrEqual(t, lipgloss.Width(l), 1+len(" EMFILE ")+1+32+1)
	}
}

func TestTable_WrapKeepsHyphenatedWordsWhole(t *testing.T) {
	eagain := "Resource temporarily unavailable (may be the same value as EWOULDBLOCK) (POSIX.1-2001)."
	tbl := NewTable(DefaultStyles(),
		Column{Header: "name"},
		Column{Header: "description", MaxWidth: 80},
	)
	tbl.AddRow("EAGAIN", eagain)

	assert.Equal(t,
		"Resource temporarily unavailable (may be the same value as EWOULDBLOCK)\n(POSIX.1-2001).",
		tbl.rows[0][1])

	ls := lines(tbl.Render())
	require.Len(t, ls, 6, "description spans two lines")
	assert.Contains(t, ls[4], "(POSIX.1-2001).")
}

func TestTable_AddRowNormalizesCells(t *testing.T) {
	tbl := NewTable(DefaultStyles(), Column{Header: "a"}, Column{Header: "b"})
	tbl.AddRow("only")
	tbl.AddRow("x", "y", "dropped")

	out := tbl.Render()
	assert.NotContains(t, out, "dropped")
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_WriteTo(t *testing.T) {
	tbl := NewTable(DefaultStyles(), Column{Header: "a"})
	tbl.AddRow("x")

	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, tbl.Render(), buf.String())
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, "ENOENT", "2", "No such file or directory"))
	assert.Equal(t, "ENOENT 2 No such file or directory\n", buf.String())
}
