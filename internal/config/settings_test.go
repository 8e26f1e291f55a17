package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/marc-holdings/internal/render"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want %q", s.OutputFormat, "text")
	}
	if s.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", s.Workers)
	}
	if s.KeepUnmatched {
		t.Error("KeepUnmatched should default to false")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want %q", s.OutputFormat, "text")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output_format: marcxml\nworkers: 3\nkeep_unmatched: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Format() != render.FormatMARCXML {
		t.Errorf("Format() = %v, want marcxml", s.Format())
	}
	if s.Workers != 3 {
		t.Errorf("Workers = %d, want 3", s.Workers)
	}
	if !s.KeepUnmatched {
		t.Error("KeepUnmatched should be true")
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", s.LogLevel, "info")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("MARC_HOLDINGS_OUTPUT_FORMAT", "json")
	t.Setenv("MARC_HOLDINGS_WORKERS", "2")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want %q", s.OutputFormat, "json")
	}
	if s.Workers != 2 {
		t.Errorf("Workers = %d, want 2", s.Workers)
	}
}

func TestLoad_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_format": "csv", "workers": 0}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.OutputFormat = "yaml"
	s.Workers = 5
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputFormat != "yaml" || loaded.Workers != 5 {
		t.Errorf("loaded = %+v", loaded)
	}
}
