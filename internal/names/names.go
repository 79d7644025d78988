// Package names produces collision-free display names within a scope
// of already-taken names. Both project names and task names go
// through it: projects against the sibling project list, tasks
// against the union of their project's three lanes.
package names

import "fmt"

// Uniquify returns candidate unchanged when it is not taken,
// otherwise "candidate (n)" for the smallest n >= 1 that is free.
// Pure and deterministic; the caller owns the scope.
func Uniquify(candidate string, taken map[string]struct{}) string {
	if _, exists := taken[candidate]; !exists {
		return candidate
	}
	for n := 1; ; n++ {
		next := fmt.Sprintf("%s (%d)", candidate, n)
		if _, exists := taken[next]; !exists {
			return next
		}
	}
}

// SetOf builds a taken-name set from one or more name lists.
func SetOf(groups ...[]string) map[string]struct{} {
	taken := make(map[string]struct{})
	for _, group := range groups {
		for _, name := range group {
			taken[name] = struct{}{}
		}
	}
	return taken
}
