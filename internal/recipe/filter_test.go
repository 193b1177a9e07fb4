package recipe_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cookbook/internal/recipe"
)

func sampleCollection() recipe.Collection {
	return recipe.Collection{
		"p": {
			ID:          "p",
			Title:       "Pancakes",
			Ingredients: []string{"2 eggs", "1 cup flour"},
			Tags:        []string{"breakfast", "quick"},
			CreatedAt:   "2024-03-01T08:00:00.000000Z",
		},
		"s": {
			ID:          "s",
			Title:       "Tomato Soup",
			Ingredients: []string{"Tomatoes", "Salt"},
			Tags:        []string{"dinner"},
			CreatedAt:   "2024-03-02T08:00:00.000000Z",
		},
		"c": {
			ID:          "c",
			Title:       "Crème Brûlée",
			Ingredients: []string{"cream", "sugar"},
			Tags:        []string{"Dessert"},
			CreatedAt:   "2024-03-02T08:00:00.000000Z",
		},
	}
}

func ids(rs []recipe.Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	c := sampleCollection()
	for _, q := range []string{"", "   "} {
		if diff := cmp.Diff(c, recipe.Filter(c, q)); diff != "" {
			t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", q, diff)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title", query: "soup", want: []string{"s"}},
		{name: "tag only", query: "BREAKFAST", want: []string{"p"}},
		{name: "ingredient", query: "flour", want: []string{"p"}},
		{name: "second ingredient line", query: "sugar", want: []string{"c"}},
		{name: "accented fold", query: "CRÈME", want: []string{"c"}},
		{name: "surrounding whitespace", query: "  dessert ", want: []string{"c"}},
		{name: "no match", query: "lasagna", want: []string{}},
		{name: "spans recipes", query: "t", want: []string{"c", "s", "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(recipe.Sorted(recipe.Filter(sampleCollection(), tt.query)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSortedNewestFirstWithIDTieBreak(t *testing.T) {
	got := ids(recipe.Sorted(sampleCollection()))
	want := []string{"c", "s", "p"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Sorted mismatch (-want +got):\n%s", diff)
	}
}
