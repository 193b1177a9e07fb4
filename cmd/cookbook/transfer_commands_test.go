package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cookbook/internal/api"
	"cookbook/internal/recipe"
)

func TestExportImportRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t, "")
	first := addRecipe(t, env, "--title", "Crème brûlée", "--tags", "dessert")
	second := addRecipe(t, env, "--title", "Fish & chips")

	exported, _, err := runCLI(t, []string{"export"}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, exported, "Crème brûlée")
	requireContains(t, exported, "Fish & chips")

	before, err := recipe.Parse([]byte(exported))
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}

	if _, _, err := runCLI(t, []string{"delete", first.ID, second.ID}, env.configPath); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out, _, err := runCLIWithInput(t, []string{"import", "-"}, env.configPath, strings.NewReader(exported))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Imported 2 recipes")

	raw, err := os.ReadFile(env.recipesPath())
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	after, err := recipe.Parse(raw)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportSingleRecipeToDirectory(t *testing.T) {
	env := setupCLITestEnv(t, "")
	created := addRecipe(t, env, "--title", "Bread")
	outDir := filepath.Join(env.baseDir, "exports")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, stderr, err := runCLI(t, []string{"export", "--id", created.ID, "-o", outDir}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	target := filepath.Join(outDir, "recipe_"+created.ID+".json")
	requireContains(t, stderr, target)

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var got recipe.Recipe
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if got.ID != created.ID || got.Title != "Bread" {
		t.Fatalf("unexpected exported recipe: %+v", got)
	}
}

func TestExportUnknownRecipe(t *testing.T) {
	env := setupCLITestEnv(t, "")

	_, _, err := runCLI(t, []string{"export", "--id", "nope"}, env.configPath)
	if !errors.Is(err, recipe.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestImportRejectsMalformedFile(t *testing.T) {
	env := setupCLITestEnv(t, "")
	existing := addRecipe(t, env, "--title", "Keep me")
	src := filepath.Join(env.baseDir, "bad.json")
	if err := os.WriteFile(src, []byte(`["not", "an", "object"]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, err := runCLI(t, []string{"import", src}, env.configPath)
	var perr *recipe.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected parse error, got %v", err)
	}

	out, _, err := runCLI(t, []string{"show", existing.ID}, env.configPath)
	if err != nil {
		t.Fatalf("show after failed import: %v", err)
	}
	requireContains(t, out, "Keep me")
}

func TestImportJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t, "")
	payload := `{"abc": {"title": "Imported", "ingredients": [], "steps": "", "tags": [], "image": null, "created_at": "2024-01-01T00:00:00.000000Z"}}`

	out, _, err := runCLIWithInput(t, []string{"import", "--json", "-"}, env.configPath, strings.NewReader(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	var resp api.ImportResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d", resp.Imported)
	}

	out, _, err = runCLI(t, []string{"show", "abc"}, env.configPath)
	if err != nil {
		t.Fatalf("show imported: %v", err)
	}
	requireContains(t, out, "Imported")
}
