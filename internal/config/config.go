// Package config provides configuration for the ufmg-calendar batch run.
//
// Configuration is optional: Default() alone drives a full run. A YAML file
// can override the source URL, year range, HTTP timeout, output artifacts
// and the calendar metadata embedded in ICS exports; CLI flags override the
// file in turn.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL  = errors.New("base_url is required")
	ErrInvalidYears    = errors.New("to_year cannot precede from_year")
	ErrInvalidTimeout  = errors.New("timeout_sec must be at least 1")
	ErrNoOutputs       = errors.New("at least one output path is required")
	ErrInvalidLogLevel = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete run configuration.
type Config struct {
	BaseURL    string         `yaml:"base_url"`
	FromYear   int            `yaml:"from_year"`
	ToYear     int            `yaml:"to_year"`
	TimeoutSec int            `yaml:"timeout_sec"`
	Outputs    []string       `yaml:"outputs"`
	Calendar   CalendarConfig `yaml:"calendar"`
	Logging    LoggingConfig  `yaml:"logging"`
}

// CalendarConfig carries the calendar-level metadata for ICS output.
type CalendarConfig struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	URL    string `yaml:"url"`
	ProdID string `yaml:"prod_id"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given. The year
// range covers the current year through the next one.
func Default() *Config {
	year := time.Now().Year()
	return &Config{
		BaseURL:    "https://ufmg.br/a-universidade/calendario-academico",
		FromYear:   year,
		ToYear:     year + 1,
		TimeoutSec: 30,
		Outputs:    []string{"calendario.json", "calendario.ics"},
		Calendar: CalendarConfig{
			Name:   "Calendário Acadêmico UFMG",
			Color:  "red",
			URL:    "https://ufmg.br/a-universidade/calendario-academico",
			ProdID: "-//UFMG Calendar//ufmg-calendar//PT",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.ToYear < c.FromYear {
		return ErrInvalidYears
	}
	if c.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if len(c.Outputs) == 0 {
		return ErrNoOutputs
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
