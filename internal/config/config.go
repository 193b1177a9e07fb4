package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Document and database file names inside the data directory.
const (
	RecipesFileName = "recipes.json"
	JournalFileName = "journal.db"
	ImagesDirName   = "images"
)

// Image storage backends.
const (
	ImageBackendDir = "dir"
	ImageBackendS3  = "s3"
)

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	ImagesDir string `toml:"images_dir"`
}

// S3 contains configuration for the S3-compatible image bucket.
type S3 struct {
	Bucket          string `toml:"bucket"`
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	Prefix          string `toml:"prefix"`
	UsePathStyle    bool   `toml:"use_path_style"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

// Images contains configuration for recipe image storage.
type Images struct {
	Backend string `toml:"backend"`
	S3      S3     `toml:"s3"`
}

// Server contains configuration for the HTTP API.
type Server struct {
	Bind           string `toml:"bind"`
	Token          string `toml:"token"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
}

// Journal contains configuration for the activity journal.
type Journal struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for cookbook.
//
// Configuration sections by subsystem:
//   - Paths: recipe document and image directories
//   - Images: image storage backend (local directory or S3)
//   - Server: HTTP API bind address and optional bearer token
//   - Journal: SQLite activity journal toggle
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Images  Images  `toml:"images"`
	Server  Server  `toml:"server"`
	Journal Journal `toml:"journal"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cookbook.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data directory and, for the dir backend, the
// image directory.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory %q: %w", c.Paths.DataDir, err)
	}
	if c.Images.Backend == ImageBackendDir {
		if err := os.MkdirAll(c.Paths.ImagesDir, 0o755); err != nil {
			return fmt.Errorf("create images directory %q: %w", c.Paths.ImagesDir, err)
		}
	}
	return nil
}

// RecipesPath returns the location of the recipe document.
func (c *Config) RecipesPath() string {
	return filepath.Join(c.Paths.DataDir, RecipesFileName)
}

// JournalPath returns the location of the activity journal database.
func (c *Config) JournalPath() string {
	return filepath.Join(c.Paths.DataDir, JournalFileName)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
