package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultListLimit bounds List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// Store manages the run ledger backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the parent directory if needed, connects to the database at
// path, and applies migrations.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history path not configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Start records a run in the running state.
func (s *Store) Start(ctx context.Context, run Run) error {
	if strings.TrimSpace(run.RunID) == "" {
		return errors.New("run id is required")
	}
	started := run.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, input_path, output_path, format, sample_rate, channels,
            status, started_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.InputPath,
		nullableString(run.OutputPath),
		run.Format,
		run.SampleRate,
		run.Channels,
		StatusRunning,
		started.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Finish marks a run succeeded or failed depending on outcome.Err.
func (s *Store) Finish(ctx context.Context, runID string, outcome Outcome) error {
	status := StatusSucceeded
	var message string
	if outcome.Err != nil {
		status = StatusFailed
		message = outcome.Err.Error()
	}
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE runs
         SET status = ?, error_message = ?, output_path = COALESCE(?, output_path),
             stream_summary = ?, finished_at = ?
         WHERE run_id = ?`,
		status,
		nullableString(message),
		nullableString(outcome.OutputPath),
		nullableString(outcome.StreamSummary),
		time.Now().UTC().Format(time.RFC3339Nano),
		runID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update run: run %s not found", runID)
	}
	return nil
}

// Get returns the run with the given identifier, or nil when absent.
func (s *Store) Get(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

const runColumns = `id, run_id, input_path, output_path, format, sample_rate, channels,
    status, error_message, stream_summary, started_at, finished_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(scanner rowScanner) (*Run, error) {
	var (
		run        Run
		output     sql.NullString
		errMsg     sql.NullString
		summary    sql.NullString
		status     string
		startedAt  string
		finishedAt sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&run.RunID,
		&run.InputPath,
		&output,
		&run.Format,
		&run.SampleRate,
		&run.Channels,
		&status,
		&errMsg,
		&summary,
		&startedAt,
		&finishedAt,
	); err != nil {
		return nil, err
	}
	run.OutputPath = output.String
	run.ErrorMessage = errMsg.String
	run.StreamSummary = summary.String
	run.Status = Status(status)
	if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
		run.StartedAt = t
	}
	if finishedAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, finishedAt.String); err == nil {
			run.FinishedAt = &t
		}
	}
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
