package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"cookbook/internal/config"
)

var (
	// ErrNotFound indicates the named image does not exist in the store.
	ErrNotFound = errors.New("image not found")
	// ErrInvalidName indicates an image name that is empty or not a flat filename.
	ErrInvalidName = errors.New("invalid image name")
)

// DefaultExtension is used when an uploaded file name carries no extension.
const DefaultExtension = ".jpg"

// Store persists image bytes by flat filename.
type Store interface {
	Put(ctx context.Context, name string, data []byte) error
	// Remove deletes the named image. Removing an absent image succeeds.
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	// Open returns a reader for the image or ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Location describes where images live, for diagnostics.
	Location() string
}

// ValidName rejects names that would escape the image namespace.
func ValidName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidName, name)
	}
	return nil
}

// FileName builds the stored name for a recipe image from the uploaded file
// name, keeping its extension or falling back to DefaultExtension.
func FileName(recipeID, originalName string) string {
	ext := filepath.Ext(strings.TrimSpace(originalName))
	if ext == "" || ext == "." || strings.ContainsAny(ext, `/\`) {
		ext = DefaultExtension
	}
	return recipeID + ext
}

// ContentType guesses a MIME type from the image name.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// New builds the Store selected by cfg.Images.Backend.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg == nil {
		return nil, errors.New("images: config is nil")
	}
	switch cfg.Images.Backend {
	case config.ImageBackendDir, "":
		return NewDirStore(cfg.Paths.ImagesDir), nil
	case config.ImageBackendS3:
		return NewS3Store(ctx, cfg.Images.S3)
	default:
		return nil, fmt.Errorf("images: unsupported backend %q", cfg.Images.Backend)
	}
}

// ErrUnsupportedImage indicates an upload that is not a PNG or JPEG image.
var ErrUnsupportedImage = errors.New("image must be PNG or JPEG")

var uploadExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

var uploadTypes = map[string]bool{"image/png": true, "image/jpeg": true}

// CheckUpload accepts PNG and JPEG uploads. The extension, when present, must
// be .png, .jpg, or .jpeg, and the content must sniff as one of those types.
func CheckUpload(name string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != "" && !uploadExts[ext] {
		return fmt.Errorf("%w: unsupported extension %q", ErrUnsupportedImage, ext)
	}
	if ct := http.DetectContentType(data); !uploadTypes[ct] {
		return fmt.Errorf("%w: content sniffed as %s", ErrUnsupportedImage, ct)
	}
	return nil
}
