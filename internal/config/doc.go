// Package config loads, normalizes, and validates cookbook configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// COOKBOOK_DATA_DIR and COOKBOOK_API_TOKEN. The Config type centralizes every
// knob the CLI and HTTP server need, so the data directory, image backend, and
// journal location are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
