// Package server exposes the recipe store over a small HTTP JSON API.
//
// Routes mirror the recipe manager's form and sidebar actions: list and
// search, create (multipart form with an optional PNG/JPEG image, or a JSON
// body), view, delete, per-recipe and whole-collection export, import, and
// image download. Every route except /api/health honours the optional bearer
// token from server.token.
//
// Store errors map to status codes by kind: validation and parse failures are
// 400, storage failures 500, unknown recipes 404.
package server
