package export

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gmartins/ufmg-calendar/internal/event"
)

const (
	// Subscription clients are hinted to refresh once a month, matching
	// the source site's monthly pagination.
	refreshInterval = "P1M"

	// Relative reminder triggers for important events.
	triggerSixDays  = "-P6D"
	triggerEveOfDay = "-PT16H30M"

	// Every event gets one reminder at this wall-clock time on its start
	// date, regardless of importance.
	morningAlarmHour   = 7
	morningAlarmMinute = 30
)

// WriteICS serializes the collection as an iCalendar document. now feeds
// only the calendar-level LAST-MODIFIED stamp; everything else is derived
// from the events, so repeated exports of the same collection differ in
// that one field alone. Line endings are forced to CRLF per RFC 5545; the
// library's default follows the host platform.
func WriteICS(w io.Writer, events []*event.Event, meta Meta, now time.Time) error {
	return BuildCalendar(events, meta, now).SerializeTo(w, ics.WithNewLineWindows)
}

// BuildCalendar assembles the iCalendar document for an event collection.
func BuildCalendar(events []*event.Event, meta Meta, now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(meta.ProdID)
	// SetName also emits X-WR-CALNAME; SetRefreshInterval already carries
	// its VALUE=DURATION parameter.
	cal.SetName(meta.Name)
	cal.SetColor(meta.Color)
	cal.SetUrl(meta.URL)
	cal.SetLastModified(now)
	cal.SetRefreshInterval(refreshInterval)

	for _, evt := range events {
		addEvent(cal, evt)
	}
	return cal
}

// addEvent appends one VEVENT with its reminder alarms.
func addEvent(cal *ics.Calendar, evt *event.Event) {
	e := cal.AddEvent(evt.UID() + "@ufmg.br")

	// DTSTAMP must be deterministic or repeated exports would differ
	// beyond LAST-MODIFIED; the start date serves.
	e.SetDtStampTime(evt.Start.Time())
	e.SetAllDayStartAt(evt.Start.Time())
	e.SetAllDayEndAt(evt.End.Time())
	e.SetSummary(Summary(evt.Flags))
	e.SetDescription(evt.Title)
	e.SetProperty(ics.ComponentPropertyClass, "PUBLIC")

	subject := Subject(evt)
	if evt.Flags.Importante {
		addRelativeAlarm(e, triggerSixDays, subject)
		addRelativeAlarm(e, triggerEveOfDay, subject)
	}
	addMorningAlarm(e, evt.Start, subject)
}

// addRelativeAlarm attaches a display alarm triggering at an offset before
// the event start.
func addRelativeAlarm(e *ics.VEvent, trigger, description string) {
	alarm := e.AddAlarm()
	alarm.SetAction(ics.ActionDisplay)
	alarm.SetTrigger(trigger)
	alarm.SetProperty(ics.ComponentPropertyDescription, description)
}

// addMorningAlarm attaches the universal 07:30 reminder as an absolute,
// floating local date-time trigger on the event's start date.
func addMorningAlarm(e *ics.VEvent, start event.Date, description string) {
	at := time.Date(start.Time().Year(), start.Time().Month(), start.Time().Day(),
		morningAlarmHour, morningAlarmMinute, 0, 0, time.Local)

	alarm := e.AddAlarm()
	alarm.SetAction(ics.ActionDisplay)
	alarm.SetProperty(ics.ComponentPropertyTrigger, at.Format("20060102T150405"),
		&ics.KeyValues{Key: "VALUE", Value: []string{"DATE-TIME"}})
	alarm.SetProperty(ics.ComponentPropertyDescription, description)
}
