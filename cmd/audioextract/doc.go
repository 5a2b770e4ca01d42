// Package main hosts the audioextract CLI entrypoint and command graph.
//
// The root command runs one extraction: it resolves configuration from
// defaults, the optional TOML file, and flags, then hands the result to the
// pipeline package. Subcommands cover dependency checks, the run history
// ledger, and configuration scaffolding.
//
// Progress and summaries go to stdout; logs and errors go to stderr.
package main
