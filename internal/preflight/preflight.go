package preflight

import (
	"context"

	"audioextract/internal/command"
	"audioextract/internal/config"
	"audioextract/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Report groups the dependency and path checks for one configuration.
type Report struct {
	Dependencies []deps.Status
	Paths        []Result
}

// OK reports whether every required dependency and path check passed.
func (r Report) OK() bool {
	if deps.MissingRequired(r.Dependencies) {
		return false
	}
	for _, result := range r.Paths {
		if !result.Passed {
			return false
		}
	}
	return true
}

// RunAll executes all applicable checks for cfg. runner is used to query tool
// versions; nil uses os/exec.
func RunAll(ctx context.Context, cfg *config.Config, runner command.Runner) Report {
	if cfg == nil {
		return Report{}
	}

	report := Report{Dependencies: CheckSystemDeps(ctx, cfg, runner)}

	if cfg.Input != "" {
		report.Paths = append(report.Paths, CheckReadableFile("Input file", cfg.Input))
	}
	if cfg.Output.Dir != "" {
		report.Paths = append(report.Paths, CheckCreatableDirectory("Output directory", cfg.Output.Dir))
	}
	if cfg.History.Enabled {
		report.Paths = append(report.Paths, CheckCreatableDirectory("History directory", historyDir(cfg)))
	}
	return report
}
