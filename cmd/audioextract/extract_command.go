package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"audioextract/internal/command"
	"audioextract/internal/media/ffprobe"
	"audioextract/internal/pipeline"
)

// textReporter prints progress lines to stdout.
type textReporter struct {
	out io.Writer
}

func (r textReporter) StreamSelected(stream ffprobe.Stream) {
	fmt.Fprintf(r.out, "Audio stream: %s\n", stream.Summary())
}

func (r textReporter) ExtractionStarted(string) {
	fmt.Fprintln(r.out, "Extracting audio stream...")
}

func runExtract(cmd *cobra.Command, ctx *commandContext, flags *extractFlags) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrConfiguration, "config", "load", "", err)
	}
	flags.apply(cmd.Flags(), cfg)
	if err := cfg.Normalize(); err != nil {
		return pipeline.Wrap(pipeline.ErrConfiguration, "config", "normalize", "", err)
	}

	logger, err := ctx.logger(cmd, cfg)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrConfiguration, "config", "logging", "", err)
	}

	opts := make([]pipeline.Option, 0, 2)
	if store := ctx.openHistory(cfg, logger); store != nil {
		defer store.Close()
		opts = append(opts, pipeline.WithRecorder(store))
	}
	out := cmd.OutOrStdout()
	if !ctx.jsonOutput() {
		opts = append(opts, pipeline.WithReporter(textReporter{out: out}))
	}

	p := pipeline.New(command.NewExecRunner(), logger, opts...)
	summary, err := p.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if ctx.jsonOutput() {
		return writeJSON(cmd, summary)
	}
	fmt.Fprintf(out, "Wrote %s\n", summary.Output)
	fmt.Fprintln(out, "Done!")
	return nil
}
