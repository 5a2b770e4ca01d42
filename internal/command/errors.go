package command

import "fmt"

// stderrTailLines bounds how much tool stderr is folded into an error message.
const stderrTailLines = 3

// ExitError reports a tool that ran to completion with a non-zero exit status.
type ExitError struct {
	Tool     string
	ExitCode int
	Detail   string
}

// NewExitError builds an ExitError from a finished process result.
func NewExitError(tool string, result Result) *ExitError {
	return &ExitError{
		Tool:     tool,
		ExitCode: result.ExitCode,
		Detail:   result.StderrTail(stderrTailLines),
	}
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
