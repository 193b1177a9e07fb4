package images_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cookbook/internal/images"
)

func TestDirStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "images")
	store := images.NewDirStore(dir)

	if err := store.Put(ctx, "abc.png", []byte("png-bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	ok, err := store.Exists(ctx, "abc.png")
	if err != nil || !ok {
		t.Fatalf("expected image to exist, ok=%v err=%v", ok, err)
	}

	rc, err := store.Open(ctx, "abc.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Remove(ctx, "abc.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "abc.png")); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
	if err := store.Remove(ctx, "abc.png"); err != nil {
		t.Fatalf("removing an absent image should succeed: %v", err)
	}
	ok, err = store.Exists(ctx, "abc.png")
	if err != nil || ok {
		t.Fatalf("expected image absent, ok=%v err=%v", ok, err)
	}
	if _, err := store.Open(ctx, "abc.png"); !errors.Is(err, images.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDirStoreRejectsPathNames(t *testing.T) {
	store := images.NewDirStore(t.TempDir())
	for _, name := range []string{"", "..", "../escape.png", `a\b.png`, "nested/x.jpg"} {
		if err := store.Put(context.Background(), name, []byte("x")); !errors.Is(err, images.ErrInvalidName) {
			t.Errorf("Put(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		original string
		want     string
	}{
		{"photo.png", "id1.png"},
		{"Photo.JPEG", "id1.JPEG"},
		{"noext", "id1.jpg"},
		{"", "id1.jpg"},
		{"archive.tar.gz", "id1.gz"},
	}
	for _, tt := range tests {
		if got := images.FileName("id1", tt.original); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.original, got, tt.want)
		}
	}
}
