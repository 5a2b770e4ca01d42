package main

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"audioextract/internal/logging"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorizer tints status words when stdout is a terminal.
type colorizer struct {
	enabled bool
}

func newColorizer(w io.Writer) colorizer {
	return colorizer{enabled: logging.IsTerminal(w)}
}

func (c colorizer) good(s string) string {
	if !c.enabled {
		return s
	}
	return text.Colors{text.FgGreen}.Sprint(s)
}

func (c colorizer) bad(s string) string {
	if !c.enabled {
		return s
	}
	return text.Colors{text.FgRed, text.Bold}.Sprint(s)
}

func (c colorizer) muted(s string) string {
	if !c.enabled {
		return s
	}
	return text.Colors{text.FgHiBlack}.Sprint(s)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
