package lookup

import "fmt"

// Table is an ordered, read-only collection of entries with a name index and
// a number index. Only canonical entries are reachable through the number index.
type Table struct {
	entries  []Entry
	byName   map[string]int
	byNumber map[int]int
}

// NewTable indexes entries. It panics on duplicate names or on two canonical
// entries sharing a number, since tables are compiled-in data.
func NewTable(entries []Entry) *Table {
	t := &Table{
		entries:  make([]Entry, len(entries)),
		byName:   make(map[string]int, len(entries)),
		byNumber: make(map[int]int, len(entries)),
	}
	copy(t.entries, entries)

	for i, e := range t.entries {
		if _, dup := t.byName[e.Name]; dup {
			panic(fmt.Sprintf("lookup: duplicate name %q", e.Name))
		}
		t.byName[e.Name] = i

		if !e.HasNumber || e.Alias {
			continue
		}
		if prev, dup := t.byNumber[e.Number]; dup {
			panic(fmt.Sprintf("lookup: %q and %q share number %d", t.entries[prev].Name, e.Name, e.Number))
		}
		t.byNumber[e.Number] = i
	}
	return t
}

// ByName returns the entry with the exact symbolic name.
func (t *Table) ByName(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// ByNumber returns the canonical entry for a number.
func (t *Table) ByNumber(n int) (Entry, bool) {
	i, ok := t.byNumber[n]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns a copy of all entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Names returns every symbolic name in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Len reports the number of entries, aliases included.
func (t *Table) Len() int {
	return len(t.entries)
}
