package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"audioextract/internal/config"
	"audioextract/internal/media/audio"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// input path is set but no file is created there; use WithInputFile for that.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Input = filepath.Join(base, "media", "input.mkv")
	cfgVal.Output.Dir = filepath.Join(base, "out")
	cfgVal.History.Path = filepath.Join(base, "state", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFormat sets the output format.
func WithFormat(format audio.Format) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithInputFile writes a small placeholder media file at the configured input path.
func WithInputFile() ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Input, 1024)
	}
}

// WithStubScript writes an executable shell script under the test bin
// directory and points the matching tool path at it. name must be "ffprobe"
// or "ffmpeg".
func WithStubScript(name, script string) ConfigOption {
	return func(b *configBuilder) {
		target := WriteStub(b.t, filepath.Join(b.baseDir, "bin"), name, script)
		switch name {
		case "ffprobe":
			b.cfg.Tools.FFprobePath = target
		case "ffmpeg":
			b.cfg.Tools.FFmpegPath = target
		default:
			b.t.Fatalf("unknown tool stub %q", name)
		}
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, ffprobe and ffmpeg are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffprobe", "ffmpeg"}
		}
		binDir := filepath.Join(b.baseDir, "path-bin")
		for _, name := range names {
			WriteStub(b.t, binDir, name, "#!/bin/sh\nexit 0\n")
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// WriteStub writes an executable script to dir/name and returns its path.
func WriteStub(t testing.TB, dir, name, script string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Dir)
}
