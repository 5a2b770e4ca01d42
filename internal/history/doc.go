// Package history persists a ledger of extraction runs in SQLite.
//
// Each run is inserted when it starts and finished with its outcome, so a run
// that is interrupted stays visible as "running". The schema is applied from
// embedded, ordered migrations on Open. The CLI lists recent runs through
// Store.List.
package history
