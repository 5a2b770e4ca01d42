package history

import "time"

// Status represents the lifecycle state of a recorded run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Run is one row of the ledger.
type Run struct {
	ID            int64
	RunID         string
	InputPath     string
	OutputPath    string
	Format        string
	SampleRate    int
	Channels      int
	Status        Status
	ErrorMessage  string
	StreamSummary string
	StartedAt     time.Time
	FinishedAt    *time.Time
}

// Duration reports how long a finished run took; zero while running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt == nil || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Outcome is what the pipeline knows once a run ends.
type Outcome struct {
	OutputPath    string
	StreamSummary string
	Err           error
}
