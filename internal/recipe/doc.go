// Package recipe owns the recipe collection and its persistence.
//
// The collection is a single JSON object keyed by recipe id, stored as
// recipes.json in the data directory and rewritten wholesale on every
// mutation. Image bytes live in an images.Store under "<id><ext>"; the
// document only carries the file name, and a name whose file has gone
// missing is rendered as missing rather than treated as an error.
//
// Store serializes mutations with an in-process mutex plus an advisory file
// lock next to the document, so a CLI invocation and a running server never
// interleave writes. Writes go through a temp file and rename.
//
// Failures are typed: ValidationError for rejected input, ParseError for an
// import payload of the wrong shape, StorageError for I/O. Each implements
// ErrorKind so transports can map them to status codes.
package recipe
