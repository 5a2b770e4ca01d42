package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"audioextract/internal/history"
)

type runView struct {
	RunID      string     `json:"run_id"`
	Status     string     `json:"status"`
	Input      string     `json:"input"`
	Output     string     `json:"output,omitempty"`
	Format     string     `json:"format"`
	SampleRate int        `json:"sample_rate"`
	Channels   int        `json:"channels"`
	Stream     string     `json:"stream,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent extraction runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfg.History.Path); os.IsNotExist(err) {
				if ctx.jsonOutput() {
					return writeJSON(cmd, []runView{})
				}
				fmt.Fprintf(out, "No history recorded yet (%s)\n", cfg.History.Path)
				return nil
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			views := make([]runView, 0, len(runs))
			for _, run := range runs {
				views = append(views, runView{
					RunID:      run.RunID,
					Status:     string(run.Status),
					Input:      run.InputPath,
					Output:     run.OutputPath,
					Format:     run.Format,
					SampleRate: run.SampleRate,
					Channels:   run.Channels,
					Stream:     run.StreamSummary,
					Error:      run.ErrorMessage,
					StartedAt:  run.StartedAt,
					FinishedAt: run.FinishedAt,
				})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderHistory(newColorizer(out), runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Maximum number of runs to show")
	return cmd
}

func renderHistory(colors colorizer, runs []history.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := string(run.Status)
		switch run.Status {
		case history.StatusSucceeded:
			status = colors.good(status)
		case history.StatusFailed:
			status = colors.bad(status)
		default:
			status = colors.muted(status)
		}
		elapsed := "-"
		if d := run.Duration(); d > 0 {
			elapsed = d.Round(time.Millisecond).String()
		}
		detail := run.StreamSummary
		if run.ErrorMessage != "" {
			detail = run.ErrorMessage
		}
		rows = append(rows, []string{
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			run.Format,
			strconv.Itoa(run.SampleRate) + "/" + strconv.Itoa(run.Channels),
			run.InputPath,
			elapsed,
			detail,
		})
	}
	return renderTable(tableSpec{
		Headers:   []string{"Started", "Status", "Format", "Rate/Ch", "Input", "Took", "Detail"},
		Rows:      rows,
		Aligns:    []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
		MaxWidths: []int{0, 0, 0, 0, 50, 0, 60},
	})
}
