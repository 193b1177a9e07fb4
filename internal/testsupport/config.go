// Package testsupport builds per-test configuration and stores so package
// tests do not share state on disk.
package testsupport

import (
	"path/filepath"
	"testing"

	"cookbook/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.ImagesDir = filepath.Join(base, "data", config.ImagesDirName)
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Server.Token = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithToken sets the HTTP API bearer token on the test config.
func WithToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.Token = token
	}
}

// WithoutJournal disables the activity journal.
func WithoutJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = false
	}
}

// WithMaxUploadBytes caps HTTP upload sizes.
func WithMaxUploadBytes(n int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.MaxUploadBytes = n
	}
}
