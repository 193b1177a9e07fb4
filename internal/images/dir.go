package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cookbook/internal/fileutil"
)

// DirStore keeps images as files in a single directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a Store rooted at dir. The directory is created on
// first write.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) Location() string { return s.dir }

// Path returns the filesystem path for name.
func (s *DirStore) Path(name string) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

func (s *DirStore) Put(_ context.Context, name string, data []byte) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write image %s: %w", name, err)
	}
	return nil
}

func (s *DirStore) Remove(_ context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image %s: %w", name, err)
	}
	return nil
}

func (s *DirStore) Exists(_ context.Context, name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat image %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

func (s *DirStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("open image %s: %w", name, err)
	}
	return f, nil
}
