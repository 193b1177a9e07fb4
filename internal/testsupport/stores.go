package testsupport

import (
	"testing"

	"cookbook/internal/config"
	"cookbook/internal/images"
	"cookbook/internal/journal"
	"cookbook/internal/logging"
	"cookbook/internal/recipe"
)

// MustOpenJournal opens the journal database for cfg and closes it on cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()
	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("journal.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewRecipeStore builds a recipe store over cfg's data dir with a directory
// image backend and, when enabled, the journal.
func NewRecipeStore(t testing.TB, cfg *config.Config) *recipe.Store {
	t.Helper()
	opts := []recipe.Option{
		recipe.WithImages(images.NewDirStore(cfg.Paths.ImagesDir)),
		recipe.WithLogger(logging.NewNop()),
	}
	if cfg.Journal.Enabled {
		opts = append(opts, recipe.WithJournal(MustOpenJournal(t, cfg)))
	}
	return recipe.NewStore(cfg.RecipesPath(), opts...)
}
