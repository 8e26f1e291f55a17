package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/handiism/marc-holdings/internal/render"
	"github.com/ilyakaznacheev/cleanenv"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputFormat string `json:"output_format" yaml:"output_format" toml:"output_format" env:"MARC_HOLDINGS_OUTPUT_FORMAT"`
	OutputPath   string `json:"output_path" yaml:"output_path" toml:"output_path" env:"MARC_HOLDINGS_OUTPUT_PATH"`

	// Conversion settings
	Workers       int  `json:"workers" yaml:"workers" toml:"workers" env:"MARC_HOLDINGS_WORKERS"`
	KeepUnmatched bool `json:"keep_unmatched" yaml:"keep_unmatched" toml:"keep_unmatched" env:"MARC_HOLDINGS_KEEP_UNMATCHED"`

	// Logging settings
	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level" env:"MARC_HOLDINGS_LOG_LEVEL"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format" env:"MARC_HOLDINGS_LOG_FORMAT"` // text, json

	// Interactive mode settings
	StartDirectory    string   `json:"start_directory" yaml:"start_directory" toml:"start_directory" env:"MARC_HOLDINGS_START_DIRECTORY"`
	AllowedExtensions []string `json:"allowed_extensions" yaml:"allowed_extensions" toml:"allowed_extensions" env:"MARC_HOLDINGS_ALLOWED_EXTENSIONS" env-separator:","`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	startDir, err := os.Getwd()
	if err != nil {
		startDir, _ = os.UserHomeDir()
	}

	return &Settings{
		OutputFormat: "text",
		OutputPath:   "",

		Workers:       runtime.NumCPU(),
		KeepUnmatched: false,

		LogLevel:  "info",
		LogFormat: "text",

		StartDirectory:    startDir,
		AllowedExtensions: []string{".mrc", ".marc", ".xml", ".txt"},
	}
}

// DefaultPath returns the default config file location,
// <user config dir>/marc-holdings/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(dir, "marc-holdings", "config.json")
}

// Load reads settings from a JSON, YAML or TOML file and applies
// MARC_HOLDINGS_* environment overrides.
//
// If path is empty or the file doesn't exist, the defaults are used, still
// with environment overrides applied.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, settings); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			return settings, settings.Validate()
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(settings); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return settings, settings.Validate()
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	var errs []error

	if _, err := render.ParseFormat(s.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", s.Workers))
	}
	switch strings.ToLower(s.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want text or json)", s.LogFormat))
	}

	return errors.Join(errs...)
}

// Format returns the parsed output format. Call Validate first; an invalid
// name falls back to text.
func (s *Settings) Format() render.Format {
	f, _ := render.ParseFormat(s.OutputFormat)
	return f
}
