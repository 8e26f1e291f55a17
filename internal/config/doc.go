// Package config provides configuration management for marc-holdings.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from JSON, YAML or TOML files
//   - Environment variable overrides (MARC_HOLDINGS_*)
//   - Saving settings as JSON
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Text output next to the input file
//	// One worker per CPU
//	// Records without an 866 are skipped
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults (plus environment) if the file doesn't exist
//	}
//
// # Environment
//
// Every setting can be overridden with an environment variable, for example
// MARC_HOLDINGS_OUTPUT_FORMAT=marcxml or MARC_HOLDINGS_WORKERS=8.
//
// # Saving Settings
//
//	settings.OutputFormat = "json"
//	err := settings.Save("/path/to/config.json")
package config
