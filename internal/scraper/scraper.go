package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gmartins/ufmg-calendar/internal/event"
	"github.com/gmartins/ufmg-calendar/internal/logger"
)

const (
	// DefaultBaseURL is the UFMG academic-calendar endpoint. Year and
	// month are passed as ano/mes query parameters.
	DefaultBaseURL = "https://ufmg.br/a-universidade/calendario-academico"
	UserAgent      = "ufmg-calendar-cli/1.0 (github.com/gmartins/ufmg-calendar)"
	DefaultTimeout = 30 * time.Second
)

// attribute names carried by qualifying anchor elements
const (
	attrTitle    = "data-info-title"
	attrInitDate = "data-info-init-date"
	attrEndDate  = "data-info-end-date"
)

// Scraper fetches and parses UFMG academic-calendar pages
type Scraper struct {
	client  *http.Client
	baseURL string
	log     *logger.Logger
}

// PageError records the failure of a single monthly page.
type PageError struct {
	Year  int
	Month int
	Err   error
}

func (p PageError) Error() string {
	return fmt.Sprintf("%04d-%02d: %v", p.Year, p.Month, p.Err)
}

func (p PageError) Unwrap() error {
	return p.Err
}

// Result aggregates the outcome of a multi-month scrape: all events from
// the pages that succeeded, in year/month/document order, plus one entry
// per failed page.
type Result struct {
	Events   []*event.Event
	Failures []PageError
}

// New creates a Scraper for the given base URL. A zero timeout falls back
// to DefaultTimeout.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.New(logger.LevelError, os.Stderr)
	}
	return &Scraper{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		log:     log,
	}
}

// monthURL builds the request URL for one (year, month) page.
func (s *Scraper) monthURL(year, month int) string {
	sep := "?"
	if strings.Contains(s.baseURL, "?") {
		sep = "&"
	}
	return s.baseURL + sep + url.Values{
		"ano": {strconv.Itoa(year)},
		"mes": {strconv.Itoa(month)},
	}.Encode()
}

// FetchMonth fetches one monthly page and extracts its events in document
// order. A transport error, a non-2xx status or a malformed date attribute
// fails the whole page.
func (s *Scraper) FetchMonth(ctx context.Context, year, month int) ([]*event.Event, error) {
	pageURL := s.monthURL(year, month)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseMonth(resp.Body)
}

// parseMonth extracts events from one monthly page body.
func (s *Scraper) parseMonth(r io.Reader) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*event.Event, 0)
	var parseErr error

	doc.Find("a[" + attrTitle + "]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if info, _ := sel.Attr(attrTitle); strings.TrimSpace(info) == "" {
			return true
		}

		title := strings.TrimSpace(sel.Text())

		start, err := parseDateAttr(sel, attrInitDate)
		if err != nil {
			parseErr = err
			return false
		}
		end, err := parseDateAttr(sel, attrEndDate)
		if err != nil {
			parseErr = err
			return false
		}

		events = append(events, event.New(title, start, end))
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return events, nil
}

// parseDateAttr reads and parses one date attribute from a selection.
func parseDateAttr(sel *goquery.Selection, attr string) (event.Date, error) {
	raw, ok := sel.Attr(attr)
	if !ok {
		return event.Date{}, fmt.Errorf("missing %s attribute", attr)
	}
	d, err := event.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return event.Date{}, fmt.Errorf("parsing %s: %w", attr, err)
	}
	return d, nil
}

// FetchRange scrapes every month of every year from fromYear through
// toYear inclusive, sequentially, aggregating per-page failures instead of
// aborting on the first one.
func (s *Scraper) FetchRange(ctx context.Context, fromYear, toYear int) *Result {
	result := &Result{Events: make([]*event.Event, 0)}

	for year := fromYear; year <= toYear; year++ {
		for month := 1; month <= 12; month++ {
			events, err := s.FetchMonth(ctx, year, month)
			if err != nil {
				logger.Incr("pages.failed")
				s.log.Warn("page failed", logger.Fields{
					"year":  year,
					"month": month,
					"error": err.Error(),
				})
				result.Failures = append(result.Failures, PageError{Year: year, Month: month, Err: err})
				continue
			}

			logger.Incr("pages.fetched")
			logger.Add("events.scraped", int64(len(events)))
			s.log.Debug("page fetched", logger.Fields{
				"year":   year,
				"month":  month,
				"events": len(events),
			})
			result.Events = append(result.Events, events...)
		}
	}

	return result
}
