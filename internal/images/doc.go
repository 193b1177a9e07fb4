// Package images stores recipe image files.
//
// Images are flat files named "<recipe-id><ext>". The recipe document only
// holds the name; the bytes live behind a Store, either a local directory
// (the default) or an S3-compatible bucket. A name that no longer resolves is
// not an error for callers: Exists reports false and the UI shows the image as
// missing.
package images
