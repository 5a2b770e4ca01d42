package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate mockgen -destination=mocks/runner.go -package=mocks audioextract/internal/command Runner

// Runner executes an external tool with an argument list.
//
// A process that starts and exits non-zero is not an error: the exit status is
// reported through Result.ExitCode. The error return is reserved for failures
// to start or wait for the process (missing binary, permissions, cancellation).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Result captures the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// StderrTail returns up to the last n non-empty lines of stderr, joined by "; ".
func (r Result) StderrTail(n int) string {
	if n <= 0 || len(r.Stderr) == 0 {
		return ""
	}
	lines := strings.Split(strings.TrimSpace(string(r.Stderr)), "\n")
	kept := make([]string, 0, n)
	for i := len(lines) - 1; i >= 0 && len(kept) < n; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			kept = append(kept, line)
		}
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, "; ")
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns the os/exec backed Runner.
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

// Run starts name with args, waits for it, and captures stdout and stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, errors.New("run command: empty executable name")
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s: %w", name, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, fmt.Errorf("%s: %w", name, err)
}
