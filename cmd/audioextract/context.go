package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"audioextract/internal/config"
	"audioextract/internal/history"
	"audioextract/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string
	noHistoryFlag *bool
	jsonFlag      *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string, noHistoryFlag, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		noHistoryFlag: noHistoryFlag,
		jsonFlag:      jsonFlag,
	}
}

// ensureConfig loads the configuration file once per invocation and applies
// the persistent logging and history flags.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.Logging.Level = *c.logLevelFlag
		}
		if flags.Changed("log-format") {
			cfg.Logging.Format = *c.logFormatFlag
		}
		if c.noHistoryFlag != nil && *c.noHistoryFlag {
			cfg.History.Enabled = false
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// logger builds the stderr logger for cfg.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, nil
}

// openHistory returns nil when history is disabled or cannot be opened; the
// latter is logged and does not fail the run.
func (c *commandContext) openHistory(cfg *config.Config, logger *slog.Logger) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logging.WarnWithContext(logger, "run history unavailable", "history_open_failed",
			logging.String("path", cfg.History.Path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "this run will not be recorded"),
		)
		return nil
	}
	return store
}
