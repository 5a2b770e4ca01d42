package extract

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"audioextract/internal/command"
)

// DefaultBinary is used when no ffmpeg path is configured.
const DefaultBinary = "ffmpeg"

var (
	// ErrExtractFailed marks an ffmpeg run that exited non-zero.
	ErrExtractFailed = errors.New("extraction tool execution failed")
	// ErrInvalidRequest marks a request rejected before ffmpeg starts.
	ErrInvalidRequest = errors.New("invalid extraction request")
)

// Request describes one extraction.
type Request struct {
	Input      string
	Output     string
	SampleRate int
	Channels   int
}

// Validate checks the request before ffmpeg is started.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return fmt.Errorf("%w: input path required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Output) == "" {
		return fmt.Errorf("%w: output path required", ErrInvalidRequest)
	}
	if r.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidRequest, r.SampleRate)
	}
	if r.Channels <= 0 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidRequest, r.Channels)
	}
	return nil
}

// Extractor runs ffmpeg extractions.
type Extractor struct {
	binary string
	runner command.Runner
}

// NewExtractor returns an Extractor for binary. A nil runner uses command.ExecRunner.
func NewExtractor(binary string, runner command.Runner) *Extractor {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = command.NewExecRunner()
	}
	return &Extractor{binary: binary, runner: runner}
}

// Binary returns the ffmpeg executable the extractor invokes.
func (e *Extractor) Binary() string {
	return e.binary
}

// BuildArgs returns the ffmpeg argument list for req. -y overwrites an existing output.
func BuildArgs(req Request) []string {
	return []string{
		"-i", req.Input,
		"-ac", strconv.Itoa(req.Channels),
		"-ar", strconv.Itoa(req.SampleRate),
		"-y",
		req.Output,
	}
}

// Extract runs ffmpeg for req and waits for it to finish. The output file is
// not inspected afterwards.
func (e *Extractor) Extract(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	res, err := e.runner.Run(ctx, e.binary, BuildArgs(req)...)
	if err != nil {
		return fmt.Errorf("ffmpeg extract: %w", err)
	}
	if !res.Success() {
		return fmt.Errorf("%w: %w", ErrExtractFailed, command.NewExitError(e.binary, res))
	}
	return nil
}
