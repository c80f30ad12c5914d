// Package matcher implements the name-pattern semantics shared by the CLI and
// the registry filters.
package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, an
// empty pattern matches nothing, anything else matches by prefix.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}
