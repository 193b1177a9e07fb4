package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cookbook/internal/api"
	"cookbook/internal/config"
)

// pngBytes sniffs as image/png.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type cliTestEnv struct {
	configPath string
	dataDir    string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, extra string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("COOKBOOK_DATA_DIR", "")
	t.Setenv("COOKBOOK_API_TOKEN", "")

	dataDir := filepath.Join(base, "data")
	configPath := filepath.Join(homeDir, ".config", "cookbook", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf("[paths]\ndata_dir = %q\n\n[logging]\nlevel = \"error\"\n%s", dataDir, extra)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{configPath: configPath, dataDir: dataDir, baseDir: base}
}

func (e *cliTestEnv) recipesPath() string {
	return filepath.Join(e.dataDir, config.RecipesFileName)
}

func (e *cliTestEnv) imagePath(name string) string {
	return filepath.Join(e.dataDir, config.ImagesDirName, name)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, nil)
}

func runCLIWithInput(t *testing.T, args []string, configPath string, stdin io.Reader) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// addRecipe runs `add --json` and returns the created recipe.
func addRecipe(t *testing.T, env *cliTestEnv, args ...string) api.Recipe {
	t.Helper()
	out, stderr, err := runCLI(t, append([]string{"add", "--json"}, args...), env.configPath)
	if err != nil {
		t.Fatalf("add failed: %v (stderr=%s)", err, stderr)
	}
	var resp api.RecipeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode add output %q: %v", out, err)
	}
	return resp.Recipe
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
