package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"audioextract/internal/testsupport"
)

const probeOneAudio = `{"streams": [
  {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720},
  {"index": 1, "codec_type": "audio", "codec_name": "aac", "channels": 2, "sample_rate": "48000", "sample_fmt": "fltp"}
]}`

type cliTestEnv struct {
	baseDir   string
	input     string
	outputDir string
	ffprobe   string
	ffmpeg    string
	historyDB string
}

// setupCLITestEnv isolates HOME, XDG_DATA_HOME, and the working directory so
// no user configuration or history leaks into the test.
func setupCLITestEnv(t *testing.T, probeJSON string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Chdir(base)

	binDir := filepath.Join(base, "bin")
	env := &cliTestEnv{
		baseDir:   base,
		input:     filepath.Join(base, "media", "song.mkv"),
		outputDir: filepath.Join(base, "out"),
		historyDB: filepath.Join(base, "data", "audioextract", "history.db"),
	}
	testsupport.WriteFile(t, env.input, 2048)

	env.ffprobe = testsupport.WriteStub(t, binDir, "ffprobe",
		"#!/bin/sh\nif [ \"$1\" = \"-version\" ]; then echo \"ffprobe version 6.1 Copyright\"; exit 0; fi\ncat <<'JSON'\n"+probeJSON+"\nJSON\n")
	env.ffmpeg = testsupport.WriteStub(t, binDir, "ffmpeg",
		"#!/bin/sh\nif [ \"$1\" = \"-version\" ]; then echo \"ffmpeg version 6.1 Copyright\"; exit 0; fi\ntouch \"$0.called\"\nfor last; do :; done\necho audio > \"$last\"\n")
	return env
}

func (e *cliTestEnv) toolArgs() []string {
	return []string{"--ffprobe-path", e.ffprobe, "--ffmpeg-path", e.ffmpeg}
}

func (e *cliTestEnv) extractArgs(extra ...string) []string {
	args := []string{"--input", e.input, "--output", e.outputDir}
	args = append(args, e.toolArgs()...)
	return append(args, extra...)
}

func (e *cliTestEnv) ffmpegCalled() bool {
	_, err := os.Stat(e.ffmpeg + ".called")
	return err == nil
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
