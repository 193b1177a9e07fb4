package recipe

import (
	"sort"
	"strings"

	"cookbook/internal/textutil"
)

// Filter returns the recipes whose title, any tag, or any ingredient line
// contains query, ignoring case. A blank query returns every recipe.
func Filter(c Collection, query string) Collection {
	out := make(Collection, len(c))
	query = strings.TrimSpace(query)
	if query == "" {
		for id, r := range c {
			out[id] = r
		}
		return out
	}
	folded := textutil.Fold(query)
	for id, r := range c {
		if r.matches(folded) {
			out[id] = r
		}
	}
	return out
}

func (r Recipe) matches(folded string) bool {
	if textutil.ContainsFold(r.Title, folded) {
		return true
	}
	for _, tag := range r.Tags {
		if textutil.ContainsFold(tag, folded) {
			return true
		}
	}
	for _, line := range r.Ingredients {
		if textutil.ContainsFold(line, folded) {
			return true
		}
	}
	return false
}

// Sorted returns the recipes newest first, breaking created_at ties by id.
func Sorted(c Collection) []Recipe {
	out := make([]Recipe, 0, len(c))
	for _, r := range c {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}
