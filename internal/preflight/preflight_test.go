package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"audioextract/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckCreatableDirectory(t *testing.T) {
	base := t.TempDir()
	result := CheckCreatableDirectory("out", filepath.Join(base, "a", "b"))
	if !result.Passed {
		t.Fatalf("expected missing dir under writable parent to pass, got: %s", result.Detail)
	}

	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result = CheckCreatableDirectory("out", filepath.Join(blocker, "child"))
	if result.Passed {
		t.Fatal("expected failure when ancestor is a file")
	}
}

func TestCheckReadableFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "in.mkv")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckReadableFile("input", f); !result.Passed {
		t.Fatalf("expected pass, got %s", result.Detail)
	}
	if result := CheckReadableFile("input", dir); result.Passed {
		t.Fatal("expected failure for directory")
	}
	if result := CheckReadableFile("input", filepath.Join(dir, "missing")); result.Passed {
		t.Fatal("expected failure for missing file")
	}
}

func TestRunAllReportsMissingTools(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithInputFile())
	cfg.Tools.FFprobePath = "definitely-missing-ffprobe"
	cfg.Tools.FFmpegPath = "definitely-missing-ffmpeg"

	report := RunAll(context.Background(), cfg, nil)

	if len(report.Dependencies) != 2 {
		t.Fatalf("expected 2 dependency statuses, got %d", len(report.Dependencies))
	}
	if report.OK() {
		t.Fatal("expected report to fail with missing tools")
	}
	if len(report.Paths) != 3 {
		t.Fatalf("expected input, output, and history path checks, got %d", len(report.Paths))
	}
	for _, result := range report.Paths {
		if !result.Passed {
			t.Fatalf("expected path check %s to pass, got %s", result.Name, result.Detail)
		}
	}
}

func TestRunAllPassesWithStubbedTools(t *testing.T) {
	banner := "#!/bin/sh\necho \"$(basename \"$0\") version 6.1 Copyright\"\n"
	cfg := testsupport.NewConfig(t,
		testsupport.WithStubScript("ffprobe", banner),
		testsupport.WithStubScript("ffmpeg", banner),
	)
	cfg.Input = ""
	cfg.History.Enabled = false

	report := RunAll(context.Background(), cfg, nil)

	if !report.OK() {
		t.Fatalf("expected report to pass, got %#v", report)
	}
	for _, status := range report.Dependencies {
		if status.Version != "6.1" {
			t.Fatalf("%s version = %q, want 6.1", status.Name, status.Version)
		}
	}
	if len(report.Paths) != 1 {
		t.Fatalf("expected only output directory check, got %d", len(report.Paths))
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if report := RunAll(context.Background(), nil, nil); len(report.Dependencies) != 0 || len(report.Paths) != 0 {
		t.Fatalf("expected empty report, got %#v", report)
	}
}
