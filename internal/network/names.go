package network

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the comparison key for a highway or city name.
func Fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether a and b name the same highway or city.
func SameName(a, b string) bool {
	return Fold(a) == Fold(b)
}

// StripAnnotation drops a trailing ", <annotation>" (for example a state
// abbreviation) and surrounding whitespace from a city name. Only the text
// after the last comma is dropped.
func StripAnnotation(name string) string {
	if i := strings.LastIndexByte(name, ','); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// MatchKey is the key used to resolve a free-form city name against every
// highway at once.
func MatchKey(name string) string {
	return Fold(StripAnnotation(name))
}
