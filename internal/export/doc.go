// Package export writes a scraped event collection to its output
// artifacts.
//
// The output kind is an explicit enumeration; file-extension sniffing is
// only a thin adapter at the boundary (KindFromPath). The JSON form is a
// plain ordered array of event objects; the iCalendar form is a
// subscription calendar with category summaries and reminder alarms.
// Artifacts are written atomically, so a failed render never truncates an
// existing file.
package export
