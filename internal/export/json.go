package export

import (
	"encoding/json"
	"io"

	"github.com/gmartins/ufmg-calendar/internal/event"
)

// WriteJSON writes the collection as an ordered array of event objects.
func WriteJSON(w io.Writer, events []*event.Event) error {
	if events == nil {
		events = []*event.Event{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(events)
}

// ReadJSON reads back a JSON artifact into an event collection.
func ReadJSON(r io.Reader) ([]*event.Event, error) {
	var events []*event.Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}
