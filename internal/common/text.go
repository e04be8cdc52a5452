package common

import "strings"

// ContainsAny reports whether s contains at least one of the given
// substrings. Callers are expected to pass s already lowercased.
func ContainsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
