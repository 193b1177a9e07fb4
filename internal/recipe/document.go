package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cookbook/internal/fileutil"
	"cookbook/internal/logging"
)

// BackupSuffix is appended to the document path when an unparseable
// document is set aside before being overwritten.
const BackupSuffix = ".bak"

type document struct {
	recipes Collection
	// corrupt holds the original bytes when the document failed to parse.
	corrupt []byte
}

// readDocument reads and parses the document. A missing document is empty.
// A parse failure is logged and reported through document.corrupt; only read
// errors are returned.
func (s *Store) readDocument() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document{recipes: Collection{}}, nil
		}
		return document{}, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return document{recipes: Collection{}}, nil
	}

	recipes, err := decodeCollection(raw)
	if err != nil {
		logging.WarnWithContext(s.logger, "recipe document unparseable", "recipes_parse_failed",
			logging.String(logging.FieldPath, s.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix the JSON by hand or restore "+s.path+BackupSuffix),
			logging.String(logging.FieldImpact, "recipes shown as empty; the file is backed up before the next change"),
		)
		return document{recipes: Collection{}, corrupt: raw}, nil
	}
	return document{recipes: recipes}, nil
}

// preserveCorrupt copies an unparseable document aside so the next write
// does not destroy it.
func (s *Store) preserveCorrupt(doc document) error {
	if doc.corrupt == nil {
		return nil
	}
	backup := s.path + BackupSuffix
	if err := fileutil.WriteFileAtomic(backup, doc.corrupt, 0o644); err != nil {
		return &StorageError{Op: "back up unparseable document", Path: backup, Err: err}
	}
	s.logger.Warn("unparseable recipe document backed up",
		logging.String(logging.FieldEventType, "recipes_backup_written"),
		logging.String(logging.FieldPath, backup),
		logging.String(logging.FieldImpact, "previous document replaced by the current change"),
	)
	return nil
}

func (s *Store) writeDocument(c Collection) error {
	out := make(Collection, len(c))
	for id, r := range c {
		out[id] = r.normalized()
	}
	data, err := Export(out)
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}
	if err := s.writeFile(s.path, data, 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// decodeCollection parses a JSON object of recipe objects. A recipe with an
// empty id takes its key; an id that differs from its key is rejected.
func decodeCollection(raw []byte) (Collection, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ParseError{Err: err}
	}
	if entries == nil {
		return nil, &ParseError{Err: errors.New("expected a JSON object of recipes")}
	}

	out := make(Collection, len(entries))
	for key, value := range entries {
		if key == "" {
			return nil, &ParseError{Err: errors.New("empty recipe key")}
		}
		trimmed := bytes.TrimSpace(value)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, &ParseError{Err: fmt.Errorf("recipe %q is not a JSON object", key)}
		}
		var r Recipe
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, &ParseError{Err: fmt.Errorf("recipe %q: %w", key, err)}
		}
		switch {
		case r.ID == "":
			r.ID = key
		case r.ID != key:
			return nil, &ParseError{Err: fmt.Errorf("recipe %q has mismatched id %q", key, r.ID)}
		}
		out[key] = r.normalized()
	}
	return out, nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
