package deps

import (
	"context"
	"fmt"
	"strings"

	"audioextract/internal/command"
)

// ToolVersion runs `binary -version` and returns the version token from the
// banner line, e.g. "6.1.1" from "ffmpeg version 6.1.1 Copyright ...".
func ToolVersion(ctx context.Context, runner command.Runner, binary string) (string, error) {
	if runner == nil {
		runner = command.NewExecRunner()
	}
	res, err := runner.Run(ctx, binary, "-version")
	if err != nil {
		return "", fmt.Errorf("%s -version: %w", binary, err)
	}
	if !res.Success() {
		return "", command.NewExitError(binary, res)
	}
	version, ok := parseVersionBanner(string(res.Stdout))
	if !ok {
		return "", fmt.Errorf("%s -version: unrecognized output", binary)
	}
	return version, nil
}

// AnnotateVersions fills Version for every available status, recording
// failures in Detail without marking the dependency unavailable.
func AnnotateVersions(ctx context.Context, runner command.Runner, statuses []Status) {
	for i := range statuses {
		if !statuses[i].Available {
			continue
		}
		version, err := ToolVersion(ctx, runner, statuses[i].Path)
		if err != nil {
			statuses[i].Detail = err.Error()
			continue
		}
		statuses[i].Version = version
	}
}

func parseVersionBanner(output string) (string, bool) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	for i := 0; i+1 < len(fields); i++ {
		if fields[i] == "version" {
			return fields[i+1], true
		}
	}
	return "", false
}
