package recipe

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"cookbook/internal/config"
	"cookbook/internal/fileutil"
	"cookbook/internal/images"
	"cookbook/internal/journal"
	"cookbook/internal/logging"
	"cookbook/internal/textutil"
)

const (
	lockRetryDelay = 50 * time.Millisecond
	lockTimeout    = 10 * time.Second
)

// Recorder receives an event for every successful mutation.
type Recorder interface {
	Record(ctx context.Context, event journal.Event) error
}

// Store loads, mutates, and persists the recipe collection.
type Store struct {
	path    string
	fileLk  *flock.Flock
	images  images.Store
	journal Recorder
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	// writeFile persists the document; replaced in tests.
	writeFile func(path string, data []byte, mode os.FileMode) error

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithImages sets the image backend. The default is a directory named
// "images" next to the document.
func WithImages(store images.Store) Option {
	return func(s *Store) {
		if store != nil {
			s.images = store
		}
	}
}

// WithJournal records every successful mutation.
func WithJournal(rec Recorder) Option {
	return func(s *Store) { s.journal = rec }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the source of created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides recipe id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStore returns a store persisting to the document at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		fileLk:    flock.New(path + ".lock"),
		now:       time.Now,
		newID:     newRecipeID,
		writeFile: fileutil.WriteFileAtomic,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.images == nil {
		s.images = images.NewDirStore(filepath.Join(filepath.Dir(path), config.ImagesDirName))
	}
	s.logger = logging.NewComponentLogger(s.logger, "recipe-store")
	return s
}

// newRecipeID returns a UUIDv4 as 32 lowercase hex characters.
func newRecipeID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

// Images returns the image backend.
func (s *Store) Images() images.Store { return s.images }

// Load returns the persisted collection. An absent, unreadable, or
// unparseable document yields an empty collection; the latter two are logged.
func (s *Store) Load(ctx context.Context) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		logging.WarnWithContext(s.logger, "recipe document unreadable", "recipes_read_failed",
			logging.String(logging.FieldPath, s.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check file permissions on the data directory"),
			logging.String(logging.FieldImpact, "recipes shown as empty"),
		)
		return Collection{}
	}
	return doc.recipes
}

// Get returns the recipe with id.
func (s *Store) Get(ctx context.Context, id string) (Recipe, bool) {
	r, ok := s.Load(ctx)[strings.TrimSpace(id)]
	return r, ok
}

// Save replaces the persisted collection with c.
func (s *Store) Save(ctx context.Context, c Collection) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	if err := s.preserveCorrupt(doc); err != nil {
		return err
	}
	return s.writeDocument(c)
}

// Add validates in, stores its image if any, and persists the new recipe.
func (s *Store) Add(ctx context.Context, in NewRecipe) (Recipe, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Steps = strings.TrimSpace(in.Steps)
	if err := validateInput(in); err != nil {
		return Recipe{}, err
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return Recipe{}, err
	}
	defer unlock()

	doc, err := s.readDocument()
	if err != nil {
		return Recipe{}, err
	}
	if err := s.preserveCorrupt(doc); err != nil {
		return Recipe{}, err
	}

	id := s.newID()
	for {
		if _, taken := doc.recipes[id]; !taken {
			break
		}
		id = s.newID()
	}

	r := Recipe{
		ID:          id,
		Title:       in.Title,
		Ingredients: textutil.Clean(in.Ingredients),
		Steps:       in.Steps,
		Tags:        textutil.Clean(in.Tags),
		CreatedAt:   s.now().UTC().Format(CreatedAtLayout),
	}

	if in.Image != nil {
		name := images.FileName(id, in.ImageName)
		if err := s.images.Put(ctx, name, in.Image); err != nil {
			return Recipe{}, &StorageError{Op: "write image", Path: name, Err: err}
		}
		r.Image = stringPtr(name)
	}

	doc.recipes[id] = r
	if err := s.writeDocument(doc.recipes); err != nil {
		if r.HasImage() {
			s.removeImage(ctx, r, "image left behind after failed save")
		}
		return Recipe{}, err
	}

	s.logger.Debug("recipe added",
		logging.String(logging.FieldRecipeID, id),
		logging.String("title", r.Title),
		logging.Bool("has_image", r.HasImage()),
	)
	s.record(ctx, journal.Event{Action: journal.ActionAdd, RecipeID: id, Title: r.Title})
	return r, nil
}

// Delete removes the recipe with id and its image. Deleting an unknown id
// succeeds and reports false.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)

	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	doc, err := s.readDocument()
	if err != nil {
		return false, err
	}
	r, ok := doc.recipes[id]
	if !ok {
		return false, nil
	}
	if err := s.preserveCorrupt(doc); err != nil {
		return false, err
	}

	delete(doc.recipes, id)
	if err := s.writeDocument(doc.recipes); err != nil {
		return false, err
	}
	if r.HasImage() {
		s.removeImage(ctx, r, "image delete failed")
	}

	s.logger.Debug("recipe deleted", logging.String(logging.FieldRecipeID, id), logging.String("title", r.Title))
	s.record(ctx, journal.Event{Action: journal.ActionDelete, RecipeID: id, Title: r.Title})
	return true, nil
}

// Import parses raw as a collection and replaces the persisted data with it.
// It returns the number of imported recipes.
func (s *Store) Import(ctx context.Context, raw []byte) (int, error) {
	incoming, err := decodeCollection(raw)
	if err != nil {
		return 0, err
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	doc, err := s.readDocument()
	if err != nil {
		return 0, err
	}
	if err := s.preserveCorrupt(doc); err != nil {
		return 0, err
	}
	if err := s.writeDocument(incoming); err != nil {
		return 0, err
	}

	s.logger.Debug("recipes imported", logging.Int("count", len(incoming)))
	s.record(ctx, journal.Event{Action: journal.ActionImport, Count: len(incoming)})
	return len(incoming), nil
}

func (s *Store) lock(ctx context.Context) (func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()

	if err := ensureDir(filepath.Dir(s.path)); err != nil {
		s.mu.Unlock()
		return nil, &StorageError{Op: "create data dir", Path: filepath.Dir(s.path), Err: err}
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	ok, err := s.fileLk.TryLockContext(lockCtx, lockRetryDelay)
	if err == nil && !ok {
		err = errors.New("lock held by another process")
	}
	if err != nil {
		s.mu.Unlock()
		return nil, &StorageError{Op: "lock", Path: s.fileLk.Path(), Err: err}
	}

	return func() {
		if err := s.fileLk.Unlock(); err != nil {
			s.logger.Warn("failed to release recipe lock",
				logging.String(logging.FieldEventType, "recipes_unlock_failed"),
				logging.Error(err),
			)
		}
		s.mu.Unlock()
	}, nil
}

func (s *Store) removeImage(ctx context.Context, r Recipe, msg string) {
	if err := s.images.Remove(ctx, r.ImageName()); err != nil {
		logging.WarnWithContext(s.logger, msg, "image_delete_failed",
			logging.String(logging.FieldRecipeID, r.ID),
			logging.String("image", r.ImageName()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the file manually from "+s.images.Location()),
			logging.String(logging.FieldImpact, "orphaned image file remains in storage"),
		)
	}
}

func (s *Store) record(ctx context.Context, event journal.Event) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, event); err != nil {
		logging.WarnWithContext(s.logger, "journal write failed", "journal_record_failed",
			logging.String("action", string(event.Action)),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check journal.db or set journal.enabled = false"),
			logging.String(logging.FieldImpact, "history is missing this change"),
		)
	}
}
