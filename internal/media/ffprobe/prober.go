package ffprobe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"audioextract/internal/command"
)

// DefaultBinary is used when no ffprobe path is configured.
const DefaultBinary = "ffprobe"

// Prober runs ffprobe against media files.
type Prober struct {
	binary string
	runner command.Runner
}

// NewProber returns a Prober for binary. A nil runner uses command.ExecRunner.
func NewProber(binary string, runner command.Runner) *Prober {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = command.NewExecRunner()
	}
	return &Prober{binary: binary, runner: runner}
}

// Binary returns the ffprobe executable the prober invokes.
func (p *Prober) Binary() string {
	return p.binary
}

// Args returns the fixed ffprobe argument list for path.
func Args(path string) []string {
	return []string{"-v", "quiet", "-print_format", "json", "-show_streams", path}
}

// Inspect executes ffprobe against path and decodes the JSON stream listing.
func (p *Prober) Inspect(ctx context.Context, path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	res, err := p.runner.Run(ctx, p.binary, Args(path)...)
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w", err)
	}
	if !res.Success() {
		return Result{}, fmt.Errorf("%w: %w", ErrProbeFailed, command.NewExitError(p.binary, res))
	}

	result, err := ParseJSON(res.Stdout)
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// AudioStream probes path and returns its only audio stream.
func (p *Prober) AudioStream(ctx context.Context, path string) (Stream, error) {
	result, err := p.Inspect(ctx, path)
	if err != nil {
		return Stream{}, err
	}
	return SoleAudioStream(result.Streams)
}

// Inspect probes path with the os/exec runner.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	return NewProber(binary, nil).Inspect(ctx, path)
}
