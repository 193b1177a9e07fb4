package recipe

import (
	"errors"
	"fmt"
)

// Error kinds reported by ErrorKind.
const (
	KindValidation = "validation"
	KindParse      = "parse"
	KindStorage    = "storage"
)

// ErrNotFound indicates the requested recipe id is not in the collection.
var ErrNotFound = errors.New("recipe not found")

// ErrorClassifier allows errors to declare their classification for status mapping.
type ErrorClassifier interface {
	ErrorKind() string
}

// Kind returns the classification of err, or "" when err carries none.
func Kind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return ""
}

// ValidationError reports rejected Add input. Nothing was mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) ErrorKind() string { return KindValidation }

// ParseError reports an import payload that is not a JSON object of recipes.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse recipes: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) ErrorKind() string { return KindParse }

// StorageError reports an I/O failure on the document, its lock, or an image.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) ErrorKind() string { return KindStorage }
