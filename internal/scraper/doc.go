// Package scraper fetches the UFMG academic-calendar pages and extracts
// event records from them.
//
// The calendar site serves one HTML page per (year, month) query. Every
// anchor element carrying a non-empty data-info-title attribute is one
// event; its date range lives in the data-info-init-date and
// data-info-end-date attributes. FetchRange walks a year range month by
// month, collecting per-page outcomes so that a single bad month does not
// discard the rest of the run.
package scraper
