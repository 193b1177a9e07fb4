package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cookbook/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("COOKBOOK_DATA_DIR", "")
	t.Setenv("COOKBOOK_API_TOKEN", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "cookbook")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.ImagesDir != filepath.Join(wantData, "images") {
		t.Fatalf("unexpected images dir: %q", cfg.Paths.ImagesDir)
	}
	if cfg.RecipesPath() != filepath.Join(wantData, "recipes.json") {
		t.Fatalf("unexpected recipes path: %q", cfg.RecipesPath())
	}
	if cfg.Images.Backend != config.ImageBackendDir {
		t.Fatalf("expected dir backend by default, got %q", cfg.Images.Backend)
	}
	if cfg.Server.Bind != "127.0.0.1:8537" {
		t.Fatalf("unexpected server bind: %q", cfg.Server.Bind)
	}
	if !cfg.Journal.Enabled {
		t.Fatal("expected journal enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadHonoursEnvironmentFallbacks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := filepath.Join(t.TempDir(), "env-data")
	t.Setenv("COOKBOOK_DATA_DIR", dataDir)
	t.Setenv("COOKBOOK_API_TOKEN", "  secret  ")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Fatalf("expected env data dir %q, got %q", dataDir, cfg.Paths.DataDir)
	}
	if cfg.Server.Token != "secret" {
		t.Fatalf("expected trimmed token from env, got %q", cfg.Server.Token)
	}
}

func TestLoadCustomConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COOKBOOK_DATA_DIR", "")
	t.Setenv("COOKBOOK_API_TOKEN", "")

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	payload := map[string]any{
		"paths": map[string]any{
			"data_dir": dataDir,
		},
		"images": map[string]any{
			"backend": "S3",
			"s3": map[string]any{
				"bucket":   " recipes ",
				"endpoint": "http://127.0.0.1:9000/",
				"prefix":   "/photos",
			},
		},
		"logging": map[string]any{
			"format": "JSON",
			"level":  "Debug",
		},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to exist, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Images.Backend != config.ImageBackendS3 {
		t.Fatalf("expected s3 backend, got %q", cfg.Images.Backend)
	}
	if cfg.Images.S3.Bucket != "recipes" {
		t.Fatalf("expected trimmed bucket, got %q", cfg.Images.S3.Bucket)
	}
	if cfg.Images.S3.Endpoint != "http://127.0.0.1:9000" {
		t.Fatalf("expected endpoint without trailing slash, got %q", cfg.Images.S3.Endpoint)
	}
	if cfg.Images.S3.Prefix != "photos/" {
		t.Fatalf("expected normalized prefix, got %q", cfg.Images.S3.Prefix)
	}
	if cfg.Images.S3.Region != "us-east-1" {
		t.Fatalf("expected default region, got %q", cfg.Images.S3.Region)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging settings, got %+v", cfg.Logging)
	}
	if cfg.JournalPath() != filepath.Join(dataDir, "journal.db") {
		t.Fatalf("unexpected journal path: %q", cfg.JournalPath())
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "unknown backend",
			mutate: func(c *config.Config) { c.Images.Backend = "ftp" },
			want:   "images.backend",
		},
		{
			name:   "s3 without bucket",
			mutate: func(c *config.Config) { c.Images.Backend = config.ImageBackendS3 },
			want:   "images.s3.bucket",
		},
		{
			name: "half of the s3 credentials",
			mutate: func(c *config.Config) {
				c.Images.Backend = config.ImageBackendS3
				c.Images.S3.Bucket = "b"
				c.Images.S3.AccessKeyID = "id"
			},
			want: "must be set together",
		},
		{
			name:   "unknown log format",
			mutate: func(c *config.Config) { c.Logging.Format = "xml" },
			want:   "logging.format",
		},
		{
			name:   "unknown log level",
			mutate: func(c *config.Config) { c.Logging.Level = "trace" },
			want:   "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.ImagesDir = t.TempDir()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestEnsureDirectoriesCreatesDataAndImages(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.ImagesDir = filepath.Join(base, "data", "images")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.ImagesDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COOKBOOK_DATA_DIR", "")
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Images.Backend != config.ImageBackendDir {
		t.Fatalf("unexpected sample backend %q", cfg.Images.Backend)
	}
}
