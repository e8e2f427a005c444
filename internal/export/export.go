package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gmartins/ufmg-calendar/internal/event"
)

// ErrUnsupportedFormat is returned for output paths whose extension maps to
// no known kind. It always reaches the caller; nothing is written.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Kind selects an output format.
type Kind string

const (
	KindJSON Kind = "json"
	KindICS  Kind = "ics"
)

// Meta carries the calendar-level metadata embedded in ICS output.
type Meta struct {
	Name   string
	Color  string
	URL    string
	ProdID string
}

// KindFromPath infers the output kind from a path's file extension.
// "json" selects the JSON document; "ics" and "ical" both select the
// iCalendar document.
func KindFromPath(path string) (Kind, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "json":
		return KindJSON, nil
	case "ics", "ical":
		return KindICS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Export renders the event collection and writes it to path, with the kind
// inferred from the path's extension. The same in-memory collection can be
// exported any number of times.
func Export(events []*event.Event, path string, meta Meta, now time.Time) error {
	kind, err := KindFromPath(path)
	if err != nil {
		return err
	}
	return ExportKind(events, kind, path, meta, now)
}

// ExportKind renders the event collection as the given kind and writes it
// to path. The document is rendered fully in memory first, then written
// atomically.
func ExportKind(events []*event.Event, kind Kind, path string, meta Meta, now time.Time) error {
	var buf bytes.Buffer

	switch kind {
	case KindJSON:
		if err := WriteJSON(&buf, events); err != nil {
			return fmt.Errorf("rendering JSON: %w", err)
		}
	case KindICS:
		if err := WriteICS(&buf, events, meta, now); err != nil {
			return fmt.Errorf("rendering calendar: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(kind))
	}

	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
