// Package logging assembles structured slog loggers for audioextract.
//
// It owns the console and JSON handlers, parses level names, and exposes
// helpers for component loggers and run-scoped attributes so every log line
// about one extraction carries the same run_id. Logs are diagnostics and go to
// stderr; user-facing progress lines are written by the CLI, not through here.
//
// A no-op logger is provided for tests and wiring code that cannot fail.
package logging
