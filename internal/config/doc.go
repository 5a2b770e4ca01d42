// Package config loads, normalizes, and validates audioextract configuration.
//
// Settings are layered: repository defaults, then an optional TOML file, then
// command-line flags applied by the CLI. Paths are expanded (including tilde
// shortcuts) and made absolute; bare tool names such as "ffmpeg" are left
// untouched so they resolve through PATH.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
