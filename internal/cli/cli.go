package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gmartins/ufmg-calendar/internal/config"
	"github.com/gmartins/ufmg-calendar/internal/export"
	"github.com/gmartins/ufmg-calendar/internal/logger"
	"github.com/gmartins/ufmg-calendar/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	// ExitPartial signals that artifacts were written but some monthly
	// pages failed to scrape.
	ExitPartial = 2
)

// ErrPartialRun marks a run whose artifacts were written even though some
// monthly pages failed. Execute maps it onto ExitPartial.
var ErrPartialRun = errors.New("some monthly pages failed")

var (
	flagConfig   string
	flagBaseURL  string
	flagFromYear int
	flagToYear   int
	flagOutputs  []string
	flagTimeout  time.Duration
	flagLogLevel string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ufmg-calendar",
		Short: "Scrape the UFMG academic calendar and export it",
		Long: `Scrapes the UFMG academic-calendar site month by month over a year
range and exports the collected events to JSON and/or iCalendar files.
The iCalendar output carries subscription metadata and reminder alarms,
so it can be consumed by any calendar client via subscription.`,
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Optional YAML config file")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Calendar base URL (overrides config)")
	cmd.Flags().IntVar(&flagFromYear, "from-year", 0, "First year to scrape (default: current year)")
	cmd.Flags().IntVar(&flagToYear, "to-year", 0, "Last year to scrape (default: current year + 1)")
	cmd.Flags().StringSliceVar(&flagOutputs, "out", nil, "Output path, repeatable; kind inferred from extension (.json, .ics, .ical)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-request HTTP timeout (overrides config)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")

	return cmd
}

// loadConfig resolves the effective configuration from the optional file
// and the flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = flagBaseURL
	}
	if cmd.Flags().Changed("from-year") {
		cfg.FromYear = flagFromYear
	}
	if cmd.Flags().Changed("to-year") {
		cfg.ToYear = flagToYear
	}
	if cmd.Flags().Changed("out") {
		cfg.Outputs = flagOutputs
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSec = int(flagTimeout / time.Second)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(logger.ParseLevel(cfg.Logging.Level), os.Stderr)
	logger.SetDefault(log)

	// Refuse unsupported output extensions before touching the network.
	for _, path := range cfg.Outputs {
		if _, err := export.KindFromPath(path); err != nil {
			return err
		}
	}

	log.Info("starting scrape", logger.Fields{
		"base_url":  cfg.BaseURL,
		"from_year": cfg.FromYear,
		"to_year":   cfg.ToYear,
	})

	sc := scraper.New(cfg.BaseURL, cfg.Timeout(), log)
	result := sc.FetchRange(cmd.Context(), cfg.FromYear, cfg.ToYear)

	// A run that scraped nothing and hit failures writes no artifacts at
	// all; an empty-but-clean run still produces valid empty outputs.
	totalPages := 12 * (cfg.ToYear - cfg.FromYear + 1)
	if len(result.Events) == 0 && len(result.Failures) > 0 {
		return fmt.Errorf("no events scraped, %d of %d monthly pages failed; first failure: %w",
			len(result.Failures), totalPages, result.Failures[0])
	}

	meta := export.Meta{
		Name:   cfg.Calendar.Name,
		Color:  cfg.Calendar.Color,
		URL:    cfg.Calendar.URL,
		ProdID: cfg.Calendar.ProdID,
	}
	now := time.Now()
	for _, path := range cfg.Outputs {
		if err := export.Export(result.Events, path, meta, now); err != nil {
			return fmt.Errorf("exporting %s: %w", path, err)
		}
		log.Info("artifact written", logger.Fields{"path": path, "events": len(result.Events)})
	}

	log.Info("run complete", logger.Fields{
		"events":       len(result.Events),
		"pages_failed": len(result.Failures),
	})
	log.Debug("run counters", logger.Fields{"counters": logger.CountersSnapshot()})

	if len(result.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d monthly pages failed:\n", len(result.Failures), totalPages)
		for _, f := range result.Failures {
			fmt.Fprintf(os.Stderr, "  %s\n", f.Error())
		}
		return fmt.Errorf("%w: %d of %d", ErrPartialRun, len(result.Failures), totalPages)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, ErrPartialRun) {
			os.Exit(ExitPartial)
		}
		os.Exit(ExitError)
	}
}
