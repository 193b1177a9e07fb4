package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cookbook/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDocument(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content *string
		pass    bool
		detail  string
	}{
		{name: "missing", content: nil, pass: true, detail: "not created yet"},
		{name: "empty", content: ptr("  \n"), pass: true, detail: "empty"},
		{name: "valid", content: ptr(`{"a": {"title": "x"}, "b": {"title": "y"}}`), pass: true, detail: "2 recipes"},
		{name: "corrupt", content: ptr(`{"a": `), pass: false, detail: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			result := CheckDocument("doc", path)
			if result.Passed != tt.pass || !strings.Contains(result.Detail, tt.detail) {
				t.Fatalf("unexpected result %+v", result)
			}
		})
	}
}

type bucketStub struct{ err error }

func (b bucketStub) CheckBucket(context.Context) error { return b.err }
func (b bucketStub) Location() string                  { return "s3://recipes/" }

func TestCheckBucket(t *testing.T) {
	if r := CheckBucket(context.Background(), "bucket", bucketStub{}); !r.Passed {
		t.Fatalf("expected pass, got %+v", r)
	}
	r := CheckBucket(context.Background(), "bucket", bucketStub{err: errors.New("403 Forbidden")})
	if r.Passed || !strings.Contains(r.Detail, "403") {
		t.Fatalf("expected failure with detail, got %+v", r)
	}
}

func TestRunAllWithDefaults(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := RunAll(context.Background(), cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 checks, got %d: %+v", len(results), results)
	}
	if Failed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithoutJournal())
	if n := len(RunAll(context.Background(), cfg)); n != 3 {
		t.Fatalf("expected journal check skipped, got %d results", n)
	}
}

func TestRunAllFlagsMissingImagesDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutJournal())
	if err := os.RemoveAll(cfg.Paths.ImagesDir); err != nil {
		t.Fatal(err)
	}
	if !Failed(RunAll(context.Background(), cfg)) {
		t.Fatal("expected a failing check for the missing images directory")
	}
}

func ptr(s string) *string { return &s }
