// Command cookbook manages a personal recipe collection.
//
// Recipes live in a single JSON document under the configured data directory,
// with optional images stored alongside (or in an S3 bucket). The CLI covers
// adding, listing, searching, showing, and deleting recipes, whole-collection
// export and import, the activity history, a readiness check (`doctor`), and
// an HTTP JSON API (`serve`).
package main
