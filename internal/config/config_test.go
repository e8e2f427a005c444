package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	year := time.Now().Year()
	if cfg.FromYear != year || cfg.ToYear != year+1 {
		t.Errorf("expected year range %d..%d, got %d..%d", year, year+1, cfg.FromYear, cfg.ToYear)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Timeout())
	}
	if len(cfg.Outputs) != 2 {
		t.Errorf("expected 2 default outputs, got %v", cfg.Outputs)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
base_url: "https://example.edu/calendario"
from_year: 2025
to_year: 2026
timeout_sec: 10
outputs:
  - eventos.json
  - eventos.ics
calendar:
  name: "Calendário de Teste"
  color: blue
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BaseURL != "https://example.edu/calendario" {
		t.Errorf("unexpected base URL: %s", cfg.BaseURL)
	}
	if cfg.FromYear != 2025 || cfg.ToYear != 2026 {
		t.Errorf("unexpected year range: %d..%d", cfg.FromYear, cfg.ToYear)
	}
	if cfg.Calendar.Name != "Calendário de Teste" || cfg.Calendar.Color != "blue" {
		t.Errorf("unexpected calendar metadata: %+v", cfg.Calendar)
	}
	// Fields absent from the file keep their defaults
	if cfg.Calendar.ProdID == "" {
		t.Error("prod_id should fall back to the default")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level: %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing base url", func(c *Config) { c.BaseURL = "" }, ErrMissingBaseURL},
		{"inverted years", func(c *Config) { c.FromYear = 2027; c.ToYear = 2026 }, ErrInvalidYears},
		{"zero timeout", func(c *Config) { c.TimeoutSec = 0 }, ErrInvalidTimeout},
		{"no outputs", func(c *Config) { c.Outputs = nil }, ErrNoOutputs},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
