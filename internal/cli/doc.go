// Package cli implements the command-line interface for ufmg-calendar.
//
// The cli package provides the Cobra-based command that drives one batch
// run: load configuration, scrape the requested year range month by month,
// report aggregated page failures, and export the collected events to every
// requested artifact. Output kinds are validated before the first network
// request so an unsupported extension never wastes a scrape.
package cli
