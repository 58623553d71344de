// Package ascii resolves ASCII characters from literal characters, numbers in
// several bases, and caret notation.
package ascii

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"lookup/internal/lookup"
)

// Size is the number of ASCII codes.
const Size = 0x80

// Headers are the table column titles, in Cells order.
var Headers = []string{"char", "hex", "dec", "oct", "bin"}

// UnicodeHeader titles the optional Unicode name column.
const UnicodeHeader = "name"

// Table indexes the display names by code.
var Table = lookup.NewTable(buildEntries())

func buildEntries() []lookup.Entry {
	entries := make([]lookup.Entry, Size)
	for c := range entries {
		entries[c] = lookup.Entry{Name: names[c], Number: c, HasNumber: true}
	}
	return entries
}

// Resolve turns a query token into a character.
//
// Tokens prefixed with 0x, 0o or 0b are numbers in that base. A two-byte token
// starting with '^' is caret notation. Any other ASCII token of two or more
// bytes is a decimal number, as is a single digit unless digit is set, in
// which case the digit stands for itself. Every other single ASCII character
// stands for itself.
func Resolve(query string, digit bool) lookup.Match {
	code, ok := parse(query, digit)
	if !ok {
		return lookup.Match{Query: query}
	}
	e, _ := Table.ByNumber(int(code))
	return lookup.Match{Query: query, Numeric: true, Number: int(code), Found: true, Entry: e}
}

func parse(q string, digit bool) (byte, bool) {
	switch {
	case strings.HasPrefix(q, "0x"), strings.HasPrefix(q, "0o"), strings.HasPrefix(q, "0b"):
		return ParseNumber(q)
	case len(q) == 2 && q[0] == '^':
		return Caret(q[1])
	case q == "" || !isASCII(q):
		return 0, false
	case len(q) >= 2 || (!digit && isDigit(q[0])):
		return ParseNumber(q)
	default:
		return q[0], true
	}
}

// ParseNumber parses a decimal, 0x hex, 0o octal or 0b binary ASCII code.
// One '+' may follow the prefix.
func ParseNumber(s string) (byte, bool) {
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0o"):
		s, base = s[2:], 8
	case strings.HasPrefix(s, "0b"):
		s, base = s[2:], 2
	}
	s = strings.TrimPrefix(s, "+")
	n, err := strconv.ParseUint(s, base, 8)
	if err != nil || n >= Size {
		return 0, false
	}
	return byte(n), true
}

// Caret decodes the character after '^' in caret notation: '@'.. '_' map to
// 0x00..0x1F and '?' maps to DEL.
func Caret(ch byte) (byte, bool) {
	if (ch >= '@' && ch <= '_') || ch == '?' {
		return ch ^ 0x40, true
	}
	return 0, false
}

// Cells renders a match as char, hex, dec, oct and bin cells, plus the Unicode
// name when withUnicode is set. Unresolved queries keep their text in the
// first cell and placeholders elsewhere.
func Cells(m lookup.Match, withUnicode bool) []string {
	n := len(Headers)
	if withUnicode {
		n++
	}
	cells := make([]string, 0, n)

	if !m.Found {
		cells = append(cells, m.Query)
		for len(cells) < n {
			cells = append(cells, lookup.Placeholder)
		}
		return cells
	}

	c := m.Entry.Number
	cells = append(cells,
		m.Entry.Name,
		fmt.Sprintf("0x%02X", c),
		strconv.Itoa(c),
		fmt.Sprintf("0o%03o", c),
		fmt.Sprintf("0b%07b", c),
	)
	if withUnicode {
		cells = append(cells, UnicodeName(byte(c)))
	}
	return cells
}

// UnicodeName returns the Unicode character name, e.g. "LATIN CAPITAL LETTER A".
// Control characters render as "<control>".
func UnicodeName(c byte) string {
	return runenames.Name(rune(c))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= Size {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
