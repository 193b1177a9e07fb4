package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"cookbook/internal/journal"
	"cookbook/internal/recipe"
)

func TestFromRecipeImageStates(t *testing.T) {
	name := "abc 1.png"
	r := recipe.Recipe{ID: "abc", Title: "Cake", Image: &name, CreatedAt: "2024-01-01T00:00:00.000000Z"}

	present := FromRecipe(r, recipe.ImagePresent)
	if present.ImageURL != "/api/images/abc%201.png" {
		t.Fatalf("unexpected image url %q", present.ImageURL)
	}
	if present.Ingredients == nil || present.Tags == nil {
		t.Fatal("expected non-nil slices in DTO")
	}

	missing := FromRecipe(r, recipe.ImageMissing)
	if missing.ImageURL != "" || missing.ImageState != "missing" || missing.Image != name {
		t.Fatalf("unexpected missing dto: %+v", missing)
	}

	none := FromRecipe(recipe.Recipe{ID: "x"}, recipe.ImageNone)
	if none.Image != "" || none.ImageState != "none" {
		t.Fatalf("unexpected none dto: %+v", none)
	}
}

func TestFromEvent(t *testing.T) {
	ts := time.Date(2024, 2, 3, 4, 5, 6, 7_000_000, time.UTC)
	got := FromEvent(journal.Event{ID: 9, OccurredAt: ts, Action: journal.ActionImport, Count: 4})
	if got.OccurredAt != "2024-02-03T04:05:06.007Z" {
		t.Fatalf("unexpected timestamp %q", got.OccurredAt)
	}
	if got.Action != "import" || got.Count != 4 || got.ID != 9 {
		t.Fatalf("unexpected event %+v", got)
	}
}

type storeStub struct {
	recipes recipe.Collection
	states  map[string]recipe.ImageState
}

func (s *storeStub) Load(context.Context) recipe.Collection { return s.recipes }

func (s *storeStub) Get(_ context.Context, id string) (recipe.Recipe, bool) {
	r, ok := s.recipes[id]
	return r, ok
}

func (s *storeStub) Add(context.Context, recipe.NewRecipe) (recipe.Recipe, error) {
	return recipe.Recipe{}, &recipe.ValidationError{Field: "title", Reason: "must not be empty"}
}

func (s *storeStub) Delete(_ context.Context, id string) (bool, error) {
	_, ok := s.recipes[id]
	delete(s.recipes, id)
	return ok, nil
}

func (s *storeStub) Import(context.Context, []byte) (int, error) { return 0, nil }

func (s *storeStub) ImageState(_ context.Context, r recipe.Recipe) recipe.ImageState {
	if st, ok := s.states[r.ID]; ok {
		return st
	}
	return recipe.ImageNone
}

func TestRecipeServiceListFiltersAndOrders(t *testing.T) {
	store := &storeStub{
		recipes: recipe.Collection{
			"a": {ID: "a", Title: "Apple Pie", CreatedAt: "2024-01-01T00:00:00.000000Z"},
			"b": {ID: "b", Title: "Banana Pie", CreatedAt: "2024-01-02T00:00:00.000000Z"},
			"c": {ID: "c", Title: "Carrot Soup", CreatedAt: "2024-01-03T00:00:00.000000Z"},
		},
		states: map[string]recipe.ImageState{"b": recipe.ImageMissing},
	}
	svc := NewRecipeService(store)

	resp := svc.List(context.Background(), "pie")
	if resp.Count != 2 || resp.Recipes[0].ID != "b" || resp.Recipes[1].ID != "a" {
		t.Fatalf("unexpected listing: %+v", resp)
	}
	if resp.Recipes[0].ImageState != "missing" {
		t.Fatalf("expected image state from store, got %q", resp.Recipes[0].ImageState)
	}

	if _, ok := svc.Describe(context.Background(), "zzz"); ok {
		t.Fatal("expected unknown id to be reported missing")
	}
	del, err := svc.Remove(context.Background(), "a")
	if err != nil || !del.Removed {
		t.Fatalf("unexpected delete result %+v err=%v", del, err)
	}
	if _, err := svc.Create(context.Background(), recipe.NewRecipe{}); recipe.Kind(err) != recipe.KindValidation {
		t.Fatalf("expected validation error passthrough, got %v", err)
	}
}

func TestNilRecipeServiceListIsEmpty(t *testing.T) {
	var svc *RecipeService
	resp := svc.List(context.Background(), "")
	if resp.Recipes == nil || resp.Count != 0 {
		t.Fatalf("unexpected empty listing: %+v", resp)
	}
	if _, ok := svc.Describe(context.Background(), "x"); ok {
		t.Fatal("expected nil service to find nothing")
	}
}

func TestNilRecipeServiceMutationsFail(t *testing.T) {
	svc := NewRecipeService(nil)
	ctx := context.Background()
	if _, err := svc.Create(ctx, recipe.NewRecipe{Title: "Soup"}); !errors.Is(err, ErrNoStore) {
		t.Fatalf("Create: expected ErrNoStore, got %v", err)
	}
	if _, err := svc.Remove(ctx, "x"); !errors.Is(err, ErrNoStore) {
		t.Fatalf("Remove: expected ErrNoStore, got %v", err)
	}
	if _, err := svc.Import(ctx, []byte("{}")); !errors.Is(err, ErrNoStore) {
		t.Fatalf("Import: expected ErrNoStore, got %v", err)
	}
}
