package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component. It serializes to
// and from "2006-01-02" JSON strings without loss.
type Date struct {
	t time.Time
}

// dateLayouts are tried in order when parsing a date attribute.
// The source mixes ISO-8601 values with localized dd/mm forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseDate parses a date attribute value, discarding any time-of-day
// component. It returns an error when no supported layout matches.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// DateOf truncates t to its calendar date in local time.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)}
}

// MustDate builds a Date from year, month and day. Intended for tests and
// fixed values.
func MustDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// Time returns the date as a time.Time at midnight local time.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// String returns the date in "2006-01-02" form.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// Format formats the date using a time layout string.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

// MarshalJSON encodes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("unrecognized date %q", s)
	}
	*d = DateOf(t)
	return nil
}
