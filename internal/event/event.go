package event

import (
	"crypto/sha1"
	"fmt"
)

// Event represents one academic-calendar entry
type Event struct {
	Title string `json:"title"`
	Start Date   `json:"start"`
	End   Date   `json:"end"`
	Flags Flags  `json:"flags"`
}

// Flags holds the boolean classifications derived from an event title.
// Field names match the JSON document format exactly.
type Flags struct {
	Grad        bool `json:"grad"`
	Pos         bool `json:"pos"`
	Matricula   bool `json:"matricula"`
	Trancamento bool `json:"trancamento"`
	Feriado     bool `json:"feriado"`
	Importante  bool `json:"importante"`
}

// New creates an Event from a raw title and date range, deriving the
// classification flags from the title.
func New(title string, start, end Date) *Event {
	return &Event{
		Title: title,
		Start: start,
		End:   end,
		Flags: Classify(title),
	}
}

// UID creates a deterministic identifier for an event based on its stable
// fields. Repeated exports of the same collection reuse the same UIDs.
func (e *Event) UID() string {
	h := sha1.New()
	h.Write([]byte(e.Title + "|" + e.Start.String() + "|" + e.End.String()))
	return fmt.Sprintf("%x", h.Sum(nil))
}
