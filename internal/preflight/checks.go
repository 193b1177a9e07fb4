package preflight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"cookbook/internal/journal"
	"cookbook/internal/recipe"
)

const bucketCheckTimeout = 10 * time.Second

// BucketChecker is implemented by image backends that can verify remote access.
type BucketChecker interface {
	CheckBucket(ctx context.Context) error
	Location() string
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDocument verifies the recipe document parses. A missing document passes.
func CheckDocument(name, path string) Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not created yet)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (empty)", path)}
	}
	recipes, err := recipe.Parse(raw)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d recipes)", path, len(recipes))}
}

// CheckBucket verifies the image bucket is reachable.
func CheckBucket(ctx context.Context, name string, checker BucketChecker) Result {
	checkCtx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()
	if err := checker.CheckBucket(checkCtx); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", checker.Location(), err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (reachable)", checker.Location())}
}

// CheckJournal opens the journal database, creating it if needed.
func CheckJournal(ctx context.Context, path string) Result {
	const name = "Activity journal"
	store, err := journal.OpenPath(ctx, path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer store.Close()
	if _, err := store.List(ctx, 1); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (ok)", path)}
}
