package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable for an extraction run.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is required (--input)")
	}
	if c.Output.Dir == "" {
		return errors.New("output directory is required (--output or output.dir)")
	}
	return c.validateSettings()
}

// validateSettings checks everything that may come from the config file.
func (c *Config) validateSettings() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if !c.Output.Format.Valid() {
		return fmt.Errorf("output.format: invalid format %v", c.Output.Format)
	}
	if c.Output.SampleRate <= 0 {
		return fmt.Errorf("output.sample_rate must be a positive integer, got %d", c.Output.SampleRate)
	}
	if c.Output.Channels <= 0 {
		return fmt.Errorf("output.channels must be a positive integer, got %d", c.Output.Channels)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
