// Package errno looks up Linux error numbers by value or symbolic name.
package errno

import (
	"syscall"

	"lookup/internal/lookup"
)

// UnknownDescription is shown for queries that match no error.
const UnknownDescription = "Unknown error"

// Table is the errno table: every name listed in errno(3), with numbers for
// the current platform.
var Table = lookup.NewTable(lookup.WithNumbers(entries, numbers))

// Static describes errors with the man-pages text.
func Static() lookup.Describer {
	return lookup.StaticDescriber{Fallback: UnknownDescription}
}

// Native describes errors with the platform's strerror text.
func Native() lookup.Describer {
	return lookup.NativeDescriber{
		Fallback: UnknownDescription,
		Generic:  "errno ",
		Lookup: func(n int) string {
			return syscall.Errno(n).Error()
		},
	}
}

// Describer picks the native or the static provider.
func Describer(native bool) lookup.Describer {
	if native {
		return Native()
	}
	return Static()
}
