// Package journal keeps an append-only activity log of recipe store mutations
// in SQLite.
//
// Each add, delete, and import is recorded with a timestamp so `cookbook
// history` can show what changed and when. The journal is advisory: the recipe
// document stays the source of truth, and callers log journal failures instead
// of failing the mutation that triggered them.
//
// The database runs in WAL mode with a busy timeout, and writes retry on
// SQLITE_BUSY with bounded backoff so a CLI invocation and a running server can
// share the file.
package journal
