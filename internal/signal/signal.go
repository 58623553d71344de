// Package signal looks up Linux signals by number, name or shell exit status.
package signal

import (
	"syscall"

	"lookup/internal/lookup"
)

// UnknownDescription is shown for queries that match no signal.
const UnknownDescription = "Unknown signal"

// StatusBase is added to a signal number to form the exit status of a
// process killed by that signal.
const StatusBase = 128

// Table is the signal table from signal(7), including the synonyms.
var Table = lookup.NewTable(lookup.WithNumbers(entries, numbers))

// Static describes signals with the man-pages text.
func Static() lookup.Describer {
	return lookup.StaticDescriber{Fallback: UnknownDescription}
}

// Native describes signals with the platform's strsignal text.
func Native() lookup.Describer {
	return lookup.NativeDescriber{
		Fallback: UnknownDescription,
		Generic:  "signal ",
		Lookup: func(n int) string {
			return syscall.Signal(n).String()
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

// Offset returns the number shift applied to numeric queries.
func Offset(status bool) int {
	if status {
		return -StatusBase
	}
	return 0
}
