package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"audioextract/internal/command"
	"audioextract/internal/preflight"
)

var errCheckFailed = errors.New("one or more checks failed")

type checkView struct {
	Dependencies []dependencyView `json:"dependencies"`
	Paths        []pathView       `json:"paths"`
	OK           bool             `json:"ok"`
}

type dependencyView struct {
	Name      string `json:"name"`
	Command   string `json:"command"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Available bool   `json:"available"`
	Optional  bool   `json:"optional"`
	Detail    string `json:"detail,omitempty"`
}

type pathView struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ffprobe, ffmpeg, and output paths are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), cfg)
			if err := cfg.Normalize(); err != nil {
				return err
			}

			report := preflight.RunAll(cmd.Context(), cfg, command.NewExecRunner())
			view := buildCheckView(report)

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, view); err != nil {
					return err
				}
			} else {
				renderCheck(cmd, view)
			}
			if !view.OK {
				return errCheckFailed
			}
			return nil
		},
	}

	flags.bindPaths(cmd.Flags())
	flags.bindTools(cmd.Flags())
	return cmd
}

func buildCheckView(report preflight.Report) checkView {
	view := checkView{OK: report.OK()}
	for _, dep := range report.Dependencies {
		view.Dependencies = append(view.Dependencies, dependencyView{
			Name:      dep.Name,
			Command:   dep.Command,
			Path:      dep.Path,
			Version:   dep.Version,
			Available: dep.Available,
			Optional:  dep.Optional,
			Detail:    dep.Detail,
		})
	}
	for _, result := range report.Paths {
		view.Paths = append(view.Paths, pathView(result))
	}
	return view
}

func renderCheck(cmd *cobra.Command, view checkView) {
	out := cmd.OutOrStdout()
	colors := newColorizer(out)

	depRows := make([][]string, 0, len(view.Dependencies))
	for _, dep := range view.Dependencies {
		status := colors.good("ok")
		if !dep.Available {
			status = colors.bad("missing")
		}
		location := dep.Path
		if location == "" {
			location = dep.Command
		}
		depRows = append(depRows, []string{dep.Name, status, dep.Version, location, dep.Detail})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		Title:     "Dependencies",
		Headers:   []string{"Tool", "Status", "Version", "Path", "Detail"},
		Rows:      depRows,
		MaxWidths: []int{0, 0, 24, 60, 60},
	}))

	if len(view.Paths) > 0 {
		pathRows := make([][]string, 0, len(view.Paths))
		for _, p := range view.Paths {
			status := colors.good("ok")
			if !p.Passed {
				status = colors.bad("fail")
			}
			pathRows = append(pathRows, []string{p.Name, status, p.Detail})
		}
		fmt.Fprintln(out, renderTable(tableSpec{
			Title:   "Paths",
			Headers: []string{"Check", "Status", "Detail"},
			Rows:    pathRows,
		}))
	}
}
