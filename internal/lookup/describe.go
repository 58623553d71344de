package lookup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Describer produces the human-readable text for an entry.
type Describer interface {
	Describe(e Entry) string
	// Unknown is the text shown for queries that matched nothing.
	Unknown() string
}

// StaticDescriber returns the compiled-in description.
type StaticDescriber struct {
	Fallback string
}

func (d StaticDescriber) Describe(e Entry) string {
	if e.Description == "" {
		return d.Fallback
	}
	return e.Description
}

func (d StaticDescriber) Unknown() string { return d.Fallback }

// NativeDescriber asks the platform for the text of a numbered entry. The
// first letter is upper-cased.
type NativeDescriber struct {
	Fallback string
	Lookup   func(n int) string
	// Generic is the prefix the platform uses when it has no text for a
	// number, e.g. "errno " for syscall.Errno(9999).Error().
	Generic string
}

func (d NativeDescriber) Describe(e Entry) string {
	if !e.HasNumber || d.Lookup == nil {
		return d.Fallback
	}
	text := d.Lookup(e.Number)
	if text == "" || (d.Generic != "" && strings.HasPrefix(text, d.Generic)) {
		return d.Fallback
	}
	return capitalize(text)
}

// capitalize upper-cases the first rune, matching how libc prints
// strerror and strsignal text.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (d NativeDescriber) Unknown() string { return d.Fallback }
