package testsupport

import (
	"testing"

	"audioextract/internal/config"
	"audioextract/internal/history"
)

// MustOpenStore opens the history store at cfg.History.Path and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
