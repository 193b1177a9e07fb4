package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cookbook/internal/config"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond

	// DefaultListLimit bounds List when the caller passes a non-positive limit.
	DefaultListLimit = 50
)

// Store persists journal events in SQLite.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open creates or connects to the journal database in the configured data dir.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("journal: config is nil")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(context.Background(), cfg.JournalPath())
}

// OpenPath opens the journal database at path.
func OpenPath(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, now: time.Now}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends an event. OccurredAt defaults to now.
func (s *Store) Record(ctx context.Context, event Event) error {
	if !event.Action.valid() {
		return fmt.Errorf("journal: unknown action %q", event.Action)
	}
	ctx = ensureContext(ctx)
	occurred := event.OccurredAt
	if occurred.IsZero() {
		occurred = s.now()
	}
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO events (occurred_at, action, recipe_id, title, count) VALUES (?, ?, ?, ?, ?)`,
			occurred.UTC().Format(time.RFC3339Nano),
			string(event.Action),
			nullableString(event.RecipeID),
			nullableString(event.Title),
			event.Count,
		)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		return nil
	})
}

// List returns up to limit events, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Event, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, occurred_at, action, recipe_id, title, count FROM events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev       Event
			occurred string
			action   string
			recipeID sql.NullString
			title    sql.NullString
		)
		if err := rows.Scan(&ev.ID, &occurred, &action, &recipeID, &title, &ev.Count); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Action = Action(action)
		ev.RecipeID = recipeID.String
		ev.Title = title.String
		if ts, err := time.Parse(time.RFC3339Nano, occurred); err == nil {
			ev.OccurredAt = ts
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
