// Package lookup holds the shared shape of every lookup tool: an immutable
// table of entries indexed both by symbolic name and by number, a resolver
// that turns a query token into a Match, and the description providers that
// produce the human-readable text for an entry.
package lookup
