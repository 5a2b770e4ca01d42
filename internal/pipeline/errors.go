package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"audioextract/internal/media/ffprobe"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrExternalTool  = errors.New("external tool error")
	ErrValidation    = errors.New("validation error")
)

// Wrap builds an error message that includes stage context while tagging it
// with marker for later classification.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Category returns a short label for the error's marker, or "unknown".
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrExternalTool):
		return "external_tool"
	default:
		return "unknown"
	}
}

// probeMarker separates ffprobe output that was produced but unusable from
// ffprobe runs that failed outright.
func probeMarker(err error) error {
	switch {
	case errors.Is(err, ffprobe.ErrNoAudioStream),
		errors.Is(err, ffprobe.ErrMultipleAudioStreams),
		errors.Is(err, ffprobe.ErrMalformedOutput):
		return ErrValidation
	default:
		return ErrExternalTool
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
