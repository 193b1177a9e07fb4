// Package preflight provides readiness checks for the filesystem paths and
// services cookbook depends on.
//
// `cookbook doctor` runs RunAll and prints one line per check. Checks are
// gated by configuration: the images directory is only checked for the dir
// backend, the bucket only for s3, and the journal only when enabled.
package preflight
