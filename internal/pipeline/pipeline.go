package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"audioextract/internal/command"
	"audioextract/internal/config"
	"audioextract/internal/history"
	"audioextract/internal/logging"
	"audioextract/internal/media/audio"
	"audioextract/internal/media/extract"
	"audioextract/internal/media/ffprobe"
)

const (
	stageConfig  = "config"
	stageProbe   = "probe"
	stageExtract = "extract"
)

// Recorder persists run outcomes. *history.Store satisfies it.
type Recorder interface {
	Start(ctx context.Context, run history.Run) error
	Finish(ctx context.Context, runID string, outcome history.Outcome) error
}

// Reporter receives user-facing progress events.
type Reporter interface {
	StreamSelected(stream ffprobe.Stream)
	ExtractionStarted(output string)
}

// Summary describes a completed run.
type Summary struct {
	RunID      string         `json:"run_id"`
	Input      string         `json:"input"`
	Output     string         `json:"output"`
	Format     audio.Format   `json:"format"`
	SampleRate int            `json:"sample_rate"`
	Channels   int            `json:"channels"`
	Stream     ffprobe.Stream `json:"stream"`
	Duration   time.Duration  `json:"duration_ns"`
}

// Pipeline wires the prober and extractor to a shared runner.
type Pipeline struct {
	runner   command.Runner
	logger   *slog.Logger
	recorder Recorder
	reporter Reporter
	newRunID func() string
	now      func() time.Time
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRecorder enables run history.
func WithRecorder(r Recorder) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// WithReporter registers a progress reporter.
func WithReporter(r Reporter) Option {
	return func(p *Pipeline) { p.reporter = r }
}

// WithRunIDGenerator replaces the UUID generator.
func WithRunIDGenerator(fn func() string) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.newRunID = fn
		}
	}
}

// New constructs a Pipeline. A nil runner uses os/exec; a nil logger discards.
func New(runner command.Runner, logger *slog.Logger, opts ...Option) *Pipeline {
	if runner == nil {
		runner = command.NewExecRunner()
	}
	p := &Pipeline{
		runner:   runner,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		newRunID: uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one extraction for cfg. No subprocess is started unless the
// configuration validates and the output directory exists.
func (p *Pipeline) Run(ctx context.Context, cfg *config.Config) (Summary, error) {
	if cfg == nil {
		return Summary{}, Wrap(ErrConfiguration, stageConfig, "validate", "configuration missing", nil)
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, Wrap(ErrConfiguration, stageConfig, "validate", "", err)
	}

	started := p.now()
	summary := Summary{
		RunID:      p.newRunID(),
		Input:      cfg.Input,
		Output:     cfg.OutputPath(),
		Format:     cfg.Output.Format,
		SampleRate: cfg.Output.SampleRate,
		Channels:   cfg.Output.Channels,
	}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, p.logger)

	logger.Info("extraction run started",
		logging.String("input", summary.Input),
		logging.String("output", summary.Output),
		logging.String("format", summary.Format.String()),
		logging.Int("sample_rate", summary.SampleRate),
		logging.Int("channels", summary.Channels),
	)
	recorded := p.recordStart(ctx, logger, summary, started)

	err := p.execute(ctx, logger, cfg, &summary)
	summary.Duration = p.now().Sub(started)
	if recorded {
		p.recordFinish(ctx, logger, summary, err)
	}

	if err != nil {
		logger.Error("extraction run failed",
			logging.String("category", Category(err)),
			logging.Error(err),
		)
		return summary, err
	}
	logger.Info("extraction run finished",
		logging.String("output", summary.Output),
		logging.Duration("elapsed", summary.Duration),
	)
	return summary, nil
}

func (p *Pipeline) execute(ctx context.Context, logger *slog.Logger, cfg *config.Config, summary *Summary) error {
	if err := cfg.EnsureOutputDir(); err != nil {
		return Wrap(ErrConfiguration, stageConfig, "output directory", "", err)
	}

	probeCtx := logging.WithStage(ctx, stageProbe)
	prober := ffprobe.NewProber(cfg.Tools.FFprobePath, p.runner)
	stream, err := prober.AudioStream(probeCtx, cfg.Input)
	if err != nil {
		return Wrap(probeMarker(err), stageProbe, prober.Binary(), "", err)
	}
	summary.Stream = stream
	logging.WithContext(probeCtx, p.logger).Info("audio stream selected",
		logging.String("stream", stream.Summary()),
	)
	if p.reporter != nil {
		p.reporter.StreamSelected(stream)
	}

	extractCtx := logging.WithStage(ctx, stageExtract)
	extractor := extract.NewExtractor(cfg.Tools.FFmpegPath, p.runner)
	if p.reporter != nil {
		p.reporter.ExtractionStarted(summary.Output)
	}
	req := extract.Request{
		Input:      cfg.Input,
		Output:     summary.Output,
		SampleRate: cfg.Output.SampleRate,
		Channels:   cfg.Output.Channels,
	}
	if err := extractor.Extract(extractCtx, req); err != nil {
		return Wrap(extractMarker(err), stageExtract, extractor.Binary(), "", err)
	}
	logger.Debug("ffmpeg exited cleanly", logging.String("binary", extractor.Binary()))
	return nil
}

func extractMarker(err error) error {
	if errors.Is(err, extract.ErrInvalidRequest) {
		return ErrConfiguration
	}
	return ErrExternalTool
}

func (p *Pipeline) recordStart(ctx context.Context, logger *slog.Logger, summary Summary, started time.Time) bool {
	if p.recorder == nil {
		return false
	}
	run := history.Run{
		RunID:      summary.RunID,
		InputPath:  summary.Input,
		OutputPath: summary.Output,
		Format:     summary.Format.String(),
		SampleRate: summary.SampleRate,
		Channels:   summary.Channels,
		StartedAt:  started,
	}
	if err := p.recorder.Start(ctx, run); err != nil {
		logging.WarnWithContext(logger, "run history not recorded", "history_start_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "this run will be missing from history"),
		)
		return false
	}
	return true
}

func (p *Pipeline) recordFinish(ctx context.Context, logger *slog.Logger, summary Summary, runErr error) {
	outcome := history.Outcome{OutputPath: summary.Output, Err: runErr}
	if summary.Stream.CodecType != nil {
		outcome.StreamSummary = summary.Stream.Summary()
	}
	// The run itself may have been canceled; the ledger update should still land.
	if err := p.recorder.Finish(context.WithoutCancel(ctx), summary.RunID, outcome); err != nil {
		logging.WarnWithContext(logger, "run history not updated", "history_finish_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "history shows this run as still running"),
		)
	}
}
