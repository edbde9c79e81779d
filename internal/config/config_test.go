package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://collectionapi.metmuseum.org/public/collection/v1/" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.SamplePosition != 100 || cfg.IDsLimit != 20 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected transport default timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.OutputFormat != OutputText {
		t.Fatalf("OutputFormat = %q", cfg.OutputFormat)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "7")
	t.Setenv("OUTPUT_FORMAT", "JSON")
	t.Setenv("SAMPLE_POSITION", "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPTimeout != 7*time.Second {
		t.Fatalf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.OutputFormat != OutputJSON {
		t.Fatalf("OutputFormat = %q", cfg.OutputFormat)
	}
	if cfg.SamplePosition != 3 {
		t.Fatalf("SamplePosition = %d", cfg.SamplePosition)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.yaml")
	raw := "collection_base_url: http://localhost:9999/v1/\nids_limit: 5\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:9999/v1/" || cfg.IDsLimit != 5 {
		t.Fatalf("config file not applied: %+v", cfg)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestNormalizeRejectsInvalidValues(t *testing.T) {
	valid := Config{BaseURL: "http://x", IDsLimit: 1, OutputFormat: OutputYAML}

	cases := map[string]func(*Config){
		"empty base url":   func(c *Config) { c.BaseURL = " " },
		"negative timeout": func(c *Config) { c.HTTPTimeoutSeconds = -1 },
		"zero ids limit":   func(c *Config) { c.IDsLimit = 0 },
		"unknown format":   func(c *Config) { c.OutputFormat = "xml" },
		"unknown level":    func(c *Config) { c.LogLevel = "dbg" },
	}
	for name, mutate := range cases {
		cfg := valid
		mutate(&cfg)
		if err := cfg.Normalize(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	cfg := valid
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("empty log level should default to warn, got %q", cfg.LogLevel)
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	for in, want := range map[string]string{
		" DEBUG ": "debug",
		"Warning": "warning",
		"error":   "error",
	} {
		cfg := Config{BaseURL: "http://x", IDsLimit: 1, OutputFormat: OutputText, LogLevel: in}
		if err := cfg.Normalize(); err != nil {
			t.Fatalf("%q rejected: %v", in, err)
		}
		if cfg.LogLevel != want {
			t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, want)
		}
	}
}
