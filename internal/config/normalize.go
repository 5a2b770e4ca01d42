package config

import (
	"fmt"
	"strings"
)

// Normalize trims values, fills blanks with defaults, and expands paths.
// It is idempotent so the CLI can call it again after applying flags.
func (c *Config) Normalize() error {
	if err := c.normalizeInput(); err != nil {
		return err
	}
	c.normalizeTools()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return c.normalizeHistory()
}

func (c *Config) normalizeInput() error {
	var err error
	if c.Input, err = expandPath(strings.TrimSpace(c.Input)); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	c.Tools.FFprobePath = normalizeTool(c.Tools.FFprobePath, defaultFFprobePath)
	c.Tools.FFmpegPath = normalizeTool(c.Tools.FFmpegPath, defaultFFmpegPath)
}

// normalizeTool leaves bare executable names alone so exec resolves them via PATH.
func normalizeTool(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if strings.HasPrefix(value, "~") {
		if expanded, err := expandPath(value); err == nil {
			return expanded
		}
	}
	return value
}

func (c *Config) normalizeOutput() error {
	var err error
	if c.Output.Dir, err = expandPath(strings.TrimSpace(c.Output.Dir)); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeHistory() error {
	var err error
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath()
	}
	if c.History.Path, err = expandPath(strings.TrimSpace(c.History.Path)); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}
