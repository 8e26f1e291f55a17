package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/handiism/marc-holdings/internal/config"
	"github.com/handiism/marc-holdings/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	settings *config.Settings
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// configPath returns the --config value, or the default location when it
// exists.
func (c *commandContext) configPath() string {
	if path := strings.TrimSpace(*c.configFlag); path != "" {
		return path
	}
	path := config.DefaultPath()
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func (c *commandContext) ensureSettings() (*config.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}

	settings, err := config.Load(c.configPath())
	if err != nil {
		return nil, err
	}
	if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
		settings.LogLevel = level
	}
	if format := strings.TrimSpace(*c.logFormatFlag); format != "" {
		settings.LogFormat = format
	}

	c.settings = settings
	return settings, nil
}

func (c *commandContext) newLogger(w io.Writer) (*slog.Logger, error) {
	settings, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: w,
	})
}

func defaultConfigHint() string {
	return config.DefaultPath()
}
