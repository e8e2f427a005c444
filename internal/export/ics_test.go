package export

import (
	"strings"
	"testing"
	"time"

	"github.com/gmartins/ufmg-calendar/internal/event"
)

func serialize(t *testing.T, events []*event.Event, now time.Time) string {
	t.Helper()
	var b strings.Builder
	if err := WriteICS(&b, events, testMeta(), now); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	return b.String()
}

func TestWriteICSStructure(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	out := serialize(t, testEvents(), now)

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//UFMG Calendar//ufmg-calendar//PT",
		"COLOR:red",
		"URL:https://ufmg.br/a-universidade/calendario-academico",
		"REFRESH-INTERVAL;VALUE=DURATION:P1M",
		"LAST-MODIFIED:",
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20260302",
		"DTEND;VALUE=DATE:20260306",
		"CLASS:PUBLIC",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(out, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	// Every line must end with CRLF regardless of host platform
	for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		if strings.ContainsAny(line, "\r\n") {
			t.Fatalf("found a line without CRLF ending: %q", line)
		}
	}

	// The VALUE=DURATION parameter must appear exactly once
	if strings.Contains(out, "VALUE=DURATION;VALUE=DURATION") {
		t.Error("REFRESH-INTERVAL carries a duplicated VALUE parameter")
	}

	// SetName emits both NAME and X-WR-CALNAME; neither may be doubled
	if got := strings.Count(out, "X-WR-CALNAME:"); got != 1 {
		t.Errorf("expected exactly 1 X-WR-CALNAME line, got %d", got)
	}
	if got := strings.Count(out, "\r\nNAME:"); got != 1 {
		t.Errorf("expected exactly 1 NAME line, got %d", got)
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 VEVENTs, got %d", got)
	}
}

func TestAlarmCounts(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	important := []*event.Event{event.New("Matrícula",
		event.MustDate(2026, time.March, 2), event.MustDate(2026, time.March, 6))}
	ordinary := []*event.Event{event.New("Feriado",
		event.MustDate(2026, time.April, 21), event.MustDate(2026, time.April, 21))}

	outImportant := serialize(t, important, now)
	if got := strings.Count(outImportant, "BEGIN:VALARM"); got != 3 {
		t.Errorf("important event should carry 3 alarms, got %d", got)
	}
	if !strings.Contains(outImportant, "TRIGGER:-P6D") {
		t.Error("missing the six-day reminder trigger")
	}
	if !strings.Contains(outImportant, "TRIGGER:-PT16H30M") {
		t.Error("missing the 16h30m reminder trigger")
	}
	if !strings.Contains(outImportant, "TRIGGER;VALUE=DATE-TIME:20260302T073000") {
		t.Error("missing the universal 07:30 reminder trigger")
	}

	outOrdinary := serialize(t, ordinary, now)
	if got := strings.Count(outOrdinary, "BEGIN:VALARM"); got != 1 {
		t.Errorf("ordinary event should carry exactly 1 alarm, got %d", got)
	}
	if !strings.Contains(outOrdinary, "TRIGGER;VALUE=DATE-TIME:20260421T073000") {
		t.Error("missing the universal 07:30 reminder trigger")
	}
}

func TestAlarmDescriptions(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	events := []*event.Event{event.New("Matrícula",
		event.MustDate(2026, time.March, 2), event.MustDate(2026, time.March, 6))}

	out := serialize(t, events, now)
	if !strings.Contains(out, "Alerta 02/03 na UFMG: Matrícula!") {
		t.Error("alarm description should follow the subject rule")
	}
}

func TestWriteICSIdempotent(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	events := testEvents()

	first := serialize(t, events, now)
	second := serialize(t, events, now)
	if first != second {
		t.Error("exporting the same collection with the same timestamp should be byte-identical")
	}

	// Only LAST-MODIFIED may differ when the timestamp moves
	later := serialize(t, events, now.Add(time.Hour))
	var diff []string
	a, b := strings.Split(first, "\r\n"), strings.Split(later, "\r\n")
	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			diff = append(diff, a[i])
		}
	}
	if len(diff) != 1 || !strings.HasPrefix(diff[0], "LAST-MODIFIED") {
		t.Errorf("only LAST-MODIFIED should change, got differing lines: %v", diff)
	}
}

func TestEventDescriptionIsRawTitle(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	events := []*event.Event{event.New("Feriado Nacional",
		event.MustDate(2026, time.April, 21), event.MustDate(2026, time.April, 21))}

	out := serialize(t, events, now)
	if !strings.Contains(out, "DESCRIPTION:Feriado Nacional") {
		t.Error("VEVENT description should be the raw title")
	}
	if !strings.Contains(out, "SUMMARY:UFMG: Recesso/Feriado") {
		t.Error("VEVENT summary should follow the summary rule")
	}
}
