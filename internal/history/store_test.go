package history_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"audioextract/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := history.Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	for i := 0; i < 2; i++ {
		store, err := history.Open(path)
		if err != nil {
			t.Fatalf("Open #%d failed: %v", i+1, err)
		}
		if store.Path() != path {
			t.Fatalf("Path = %q, want %q", store.Path(), path)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}
}

func TestStartFinishSucceeded(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := history.Run{
		RunID:      "run-1",
		InputPath:  "/media/in.mkv",
		OutputPath: "/out/in.wav",
		Format:     "WAV",
		SampleRate: 16000,
		Channels:   1,
	}
	if err := store.Start(ctx, run); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	got, err := store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Status != history.StatusRunning {
		t.Fatalf("expected running run, got %#v", got)
	}
	if got.FinishedAt != nil {
		t.Fatalf("running run should have no finish time")
	}

	if err := store.Finish(ctx, "run-1", history.Outcome{StreamSummary: "#1 aac 2ch 44100 Hz"}); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	got, err = store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != history.StatusSucceeded {
		t.Fatalf("Status = %q, want succeeded", got.Status)
	}
	if got.OutputPath != "/out/in.wav" {
		t.Fatalf("OutputPath = %q, want preserved value", got.OutputPath)
	}
	if got.StreamSummary != "#1 aac 2ch 44100 Hz" {
		t.Fatalf("StreamSummary = %q", got.StreamSummary)
	}
	if got.FinishedAt == nil || got.Duration() < 0 {
		t.Fatalf("expected finish time, got %#v", got)
	}
}

func TestFinishFailedRecordsError(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Start(ctx, history.Run{RunID: "run-2", InputPath: "/in.mkv", Format: "MP3", SampleRate: 44100, Channels: 2}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := store.Finish(ctx, "run-2", history.Outcome{Err: errors.New("ffmpeg exited with status 1")}); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	got, err := store.Get(ctx, "run-2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != history.StatusFailed || got.ErrorMessage != "ffmpeg exited with status 1" {
		t.Fatalf("unexpected run: %#v", got)
	}
}

func TestFinishUnknownRun(t *testing.T) {
	store := openStore(t)
	if err := store.Finish(context.Background(), "missing", history.Outcome{}); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestStartRequiresRunID(t *testing.T) {
	store := openStore(t)
	if err := store.Start(context.Background(), history.Run{InputPath: "/in"}); err == nil {
		t.Fatal("expected error for missing run id")
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := openStore(t)
	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		run := history.Run{
			RunID:      fmt.Sprintf("run-%d", i),
			InputPath:  fmt.Sprintf("/in/%d.mkv", i),
			Format:     "OPUS",
			SampleRate: 48000,
			Channels:   2,
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Start(ctx, run); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
	}

	runs, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len = %d, want 3", len(runs))
	}
	for i, want := range []string{"run-4", "run-3", "run-2"} {
		if runs[i].RunID != want {
			t.Fatalf("runs[%d] = %q, want %q", i, runs[i].RunID, want)
		}
	}
	if !runs[0].StartedAt.Equal(base.Add(4 * time.Minute)) {
		t.Fatalf("StartedAt = %v", runs[0].StartedAt)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
}
