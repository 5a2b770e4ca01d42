package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audioextract/internal/media/extract"
	"audioextract/internal/media/ffprobe"
	"audioextract/internal/pipeline"
	"audioextract/internal/testsupport"
)

func TestExtractWritesOutputAndReportsProgress(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	stdout, _, err := runCLI(t, env.extractArgs("--format", "mp3", "--output-sample-rate", "44100", "--output-channels", "2")...)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	for _, want := range []string{
		"Audio stream: #1 aac 2ch 48000 Hz fltp",
		"Extracting audio stream...",
		"Done!",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in stdout:\n%s", want, stdout)
		}
	}
	if strings.Index(stdout, "Extracting audio stream...") > strings.Index(stdout, "Done!") {
		t.Fatalf("progress lines out of order:\n%s", stdout)
	}

	output := filepath.Join(env.outputDir, "song.mp3")
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("expected output file %s: %v", output, err)
	}
	if _, err := os.Stat(env.historyDB); err != nil {
		t.Fatalf("expected history database to be created: %v", err)
	}
}

func TestExtractRejectsMultipleAudioStreams(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.ProbeJSON("audio", "audio"))

	_, _, err := runCLI(t, env.extractArgs()...)

	if !errors.Is(err, ffprobe.ErrMultipleAudioStreams) {
		t.Fatalf("expected multiple audio streams error, got %v", err)
	}
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if env.ffmpegCalled() {
		t.Fatal("ffmpeg must not run when validation fails")
	}
}

func TestExtractRejectsNoAudioStream(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.ProbeJSON("video"))

	_, _, err := runCLI(t, env.extractArgs()...)

	if !errors.Is(err, ffprobe.ErrNoAudioStream) {
		t.Fatalf("expected no audio stream error, got %v", err)
	}
	if env.ffmpegCalled() {
		t.Fatal("ffmpeg must not run when validation fails")
	}
}

func TestExtractReportsFFmpegFailure(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)
	env.ffmpeg = testsupport.WriteStub(t, filepath.Join(env.baseDir, "bin"), "ffmpeg-broken",
		"#!/bin/sh\necho 'Conversion failed!' >&2\nexit 1\n")

	_, _, err := runCLI(t, env.extractArgs()...)

	if !errors.Is(err, extract.ErrExtractFailed) {
		t.Fatalf("expected extraction failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "Conversion failed!") {
		t.Fatalf("expected ffmpeg stderr in error, got %v", err)
	}
}

func TestExtractRequiresInput(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	_, _, err := runCLI(t, append([]string{"--output", env.outputDir}, env.toolArgs()...)...)

	if !errors.Is(err, pipeline.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "--input") {
		t.Fatalf("expected error to name --input, got %v", err)
	}
	if env.ffmpegCalled() {
		t.Fatal("no subprocess should run on configuration errors")
	}
}

func TestExtractRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	_, _, err := runCLI(t, env.extractArgs("--format", "wave")...)

	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "did you mean WAV?") {
		t.Fatalf("expected suggestion in error, got %v", err)
	}
}

func TestExtractRejectsNonPositiveSampleRate(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	_, _, err := runCLI(t, env.extractArgs("--output-sample-rate", "0")...)

	if !errors.Is(err, pipeline.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestExtractJSONSummary(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	stdout, _, err := runCLI(t, env.extractArgs("--json", "--no-history")...)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var summary map[string]any
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, stdout)
	}
	if summary["format"] != "WAV" {
		t.Fatalf("format = %v, want WAV", summary["format"])
	}
	if summary["output"] != filepath.Join(env.outputDir, "song.wav") {
		t.Fatalf("output = %v", summary["output"])
	}
	if _, err := os.Stat(env.historyDB); !os.IsNotExist(err) {
		t.Fatalf("--no-history should not create the database, stat err = %v", err)
	}
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)
	configPath := filepath.Join(env.baseDir, "audioextract.toml")
	content := "[tools]\nffprobe_path = \"" + env.ffprobe + "\"\nffmpeg_path = \"" + env.ffmpeg + "\"\n\n" +
		"[output]\ndir = \"" + env.outputDir + "\"\nformat = \"opus\"\n\n[history]\nenabled = false\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t, "--input", env.input); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.outputDir, "song.opus")); err != nil {
		t.Fatalf("expected opus output from config file: %v", err)
	}
}

func TestHistoryListsRuns(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)
	if _, _, err := runCLI(t, env.extractArgs()...); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	stdout, _, err := runCLI(t, "history", "--json")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	var runs []runView
	if err := json.Unmarshal([]byte(stdout), &runs); err != nil {
		t.Fatalf("decode history: %v\n%s", err, stdout)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Status != "succeeded" || runs[0].Input != env.input {
		t.Fatalf("unexpected run: %#v", runs[0])
	}

	table, _, err := runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(table, "succeeded") || !strings.Contains(table, "Started") {
		t.Fatalf("unexpected history table:\n%s", table)
	}
}

func TestHistoryEmpty(t *testing.T) {
	setupCLITestEnv(t, probeOneAudio)

	stdout, _, err := runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(stdout, "No history recorded yet") {
		t.Fatalf("unexpected output: %s", stdout)
	}
}

func TestCheckPassesWithTools(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	stdout, _, err := runCLI(t, append([]string{"check", "--output", env.outputDir}, env.toolArgs()...)...)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, stdout)
	}
	for _, want := range []string{"FFprobe", "FFmpeg", "6.1", "Output directory"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in check output:\n%s", want, stdout)
		}
	}
}

func TestCheckFailsWhenToolMissing(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	stdout, _, err := runCLI(t, "check", "--json", "--ffprobe-path", "definitely-missing-ffprobe", "--ffmpeg-path", env.ffmpeg)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("expected check failure, got %v", err)
	}
	var view checkView
	if err := json.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("decode check output: %v\n%s", err, stdout)
	}
	if view.OK || view.Dependencies[0].Available {
		t.Fatalf("expected ffprobe to be reported missing: %#v", view)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)
	target := filepath.Join(env.baseDir, "conf", "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected target path in output: %s", stdout)
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}

	shown, _, err := runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"# Source: " + target, "[output]", "sample_rate = 16000", "WAV"} {
		if !strings.Contains(shown, want) {
			t.Fatalf("expected %q in config show output:\n%s", want, shown)
		}
	}
}

func TestExplicitMissingConfigFails(t *testing.T) {
	env := setupCLITestEnv(t, probeOneAudio)

	_, _, err := runCLI(t, env.extractArgs("--config", filepath.Join(env.baseDir, "nope.toml"))...)

	if !errors.Is(err, pipeline.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
