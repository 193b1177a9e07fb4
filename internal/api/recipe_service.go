package api

import (
	"context"
	"errors"

	"cookbook/internal/recipe"
)

// RecipeStore abstracts the recipe store operations the API layer needs.
type RecipeStore interface {
	Load(ctx context.Context) recipe.Collection
	Get(ctx context.Context, id string) (recipe.Recipe, bool)
	Add(ctx context.Context, in recipe.NewRecipe) (recipe.Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
	Import(ctx context.Context, raw []byte) (int, error)
	ImageState(ctx context.Context, r recipe.Recipe) recipe.ImageState
}

// ErrNoStore is returned by mutating calls on a nil RecipeService. Read calls
// on a nil service return empty results instead.
var ErrNoStore = errors.New("recipe service has no store")

// RecipeService exposes recipe operations returning API DTOs.
type RecipeService struct {
	store RecipeStore
}

// NewRecipeService constructs a RecipeService around the provided store.
func NewRecipeService(store RecipeStore) *RecipeService {
	if store == nil {
		return nil
	}
	return &RecipeService{store: store}
}

// List returns recipes matching query, newest first.
func (s *RecipeService) List(ctx context.Context, query string) RecipeListResponse {
	resp := RecipeListResponse{Query: query, Recipes: []Recipe{}}
	if s == nil {
		return resp
	}
	for _, r := range recipe.Sorted(recipe.Filter(s.store.Load(ctx), query)) {
		resp.Recipes = append(resp.Recipes, FromRecipe(r, s.store.ImageState(ctx, r)))
	}
	resp.Count = len(resp.Recipes)
	return resp
}

// Describe fetches a single recipe. The boolean is false for unknown ids.
func (s *RecipeService) Describe(ctx context.Context, id string) (Recipe, bool) {
	if s == nil {
		return Recipe{}, false
	}
	r, ok := s.store.Get(ctx, id)
	if !ok {
		return Recipe{}, false
	}
	return FromRecipe(r, s.store.ImageState(ctx, r)), true
}

// Create adds a recipe and returns its DTO.
func (s *RecipeService) Create(ctx context.Context, in recipe.NewRecipe) (Recipe, error) {
	if s == nil {
		return Recipe{}, ErrNoStore
	}
	r, err := s.store.Add(ctx, in)
	if err != nil {
		return Recipe{}, err
	}
	return FromRecipe(r, s.store.ImageState(ctx, r)), nil
}

// Remove deletes a recipe.
func (s *RecipeService) Remove(ctx context.Context, id string) (DeleteResponse, error) {
	if s == nil {
		return DeleteResponse{}, ErrNoStore
	}
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return DeleteResponse{}, err
	}
	return DeleteResponse{ID: id, Removed: removed}, nil
}

// Import replaces the collection with raw.
func (s *RecipeService) Import(ctx context.Context, raw []byte) (ImportResponse, error) {
	if s == nil {
		return ImportResponse{}, ErrNoStore
	}
	n, err := s.store.Import(ctx, raw)
	if err != nil {
		return ImportResponse{}, err
	}
	return ImportResponse{Imported: n}, nil
}
