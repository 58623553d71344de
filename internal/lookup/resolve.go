package lookup

import "strconv"

// Match is the outcome of resolving one query token.
type Match struct {
	Query   string
	Numeric bool
	Number  int // parsed number after the offset, valid when Numeric
	Found   bool
	Entry   Entry
}

// Resolve interprets query as a 32-bit decimal number (shifted by offset) or
// as a symbolic name. Misses are not errors: the Match carries enough to render a
// placeholder row.
func (t *Table) Resolve(query string, offset int) Match {
	if v, err := strconv.ParseInt(query, 10, 32); err == nil {
		n := int(v) + offset
		e, ok := t.ByNumber(n)
		return Match{Query: query, Numeric: true, Number: n, Found: ok, Entry: e}
	}

	e, ok := t.ByName(query)
	if !ok {
		e = Entry{Name: query}
	}
	return Match{Query: query, Found: ok, Entry: e}
}

// Fields returns the name, number and description cells for the match.
func (m Match) Fields(d Describer) (name, number, description string) {
	if m.Numeric && !m.Found {
		return Placeholder, strconv.Itoa(m.Number), d.Unknown()
	}
	return m.Entry.Name, m.Entry.NumberString(), d.Describe(m.Entry)
}
