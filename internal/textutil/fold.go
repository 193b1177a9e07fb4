package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s for caseless comparison.
func Fold(s string) string {
	// cases.Caser is stateful; build one per call.
	return cases.Fold().String(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
// needle must already be folded.
func ContainsFold(haystack, foldedNeedle string) bool {
	return strings.Contains(Fold(haystack), foldedNeedle)
}
