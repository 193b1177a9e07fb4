package preflight

import (
	"context"

	"cookbook/internal/config"
	"cookbook/internal/images"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDocument("Recipe document", cfg.RecipesPath()),
	}

	switch cfg.Images.Backend {
	case config.ImageBackendS3:
		store, err := images.NewS3Store(ctx, cfg.Images.S3)
		if err != nil {
			results = append(results, Result{Name: "Image bucket", Detail: err.Error()})
		} else {
			results = append(results, CheckBucket(ctx, "Image bucket", store))
		}
	default:
		results = append(results, CheckDirectoryAccess("Images directory", cfg.Paths.ImagesDir))
	}

	if cfg.Journal.Enabled {
		results = append(results, CheckJournal(ctx, cfg.JournalPath()))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
