// Package api defines wire-format types and converters shared by the HTTP
// server and the CLI's --json output.
//
// # Key Types
//
// Recipe: transport representation of a stored recipe plus its derived image
// state ("none", "present", "missing") and, when present, the URL the server
// serves it from.
//
// HistoryEvent: one journal entry.
//
// # Service
//
// RecipeService wraps the recipe store and returns DTOs in list order
// (newest first), resolving image state per recipe.
//
// DTOs use camelCase JSON tags. The persisted document keeps its own
// snake_case layout; exports go through the recipe package, not these types.
package api
