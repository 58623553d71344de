package lookup

import "strconv"

// Entry is one row of a static lookup table.
type Entry struct {
	Name        string
	Number      int
	HasNumber   bool
	Alias       bool // resolvable by name only; numbers resolve to the canonical entry
	Description string
}

// NumberString renders the entry number, or "-" when the platform defines none.
func (e Entry) NumberString() string {
	if !e.HasNumber {
		return Placeholder
	}
	return strconv.Itoa(e.Number)
}

// Placeholder fills cells that have no value.
const Placeholder = "-"

// WithNumbers returns a copy of entries with numbers filled in from nums.
// Entries whose name is missing from nums stay number-less.
func WithNumbers(entries []Entry, nums map[string]int) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if n, ok := nums[e.Name]; ok {
			e.Number = n
			e.HasNumber = true
		}
		out[i] = e
	}
	return out
}
