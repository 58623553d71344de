//go:build !(linux && (amd64 || 386 || arm || arm64))

package signal

// Outside the supported Linux targets names and descriptions still resolve,
// but no entry carries a number.
var numbers = map[string]int{}
