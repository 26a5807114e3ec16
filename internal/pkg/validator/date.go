package validator

import (
	"strings"
	"time"
)

// Date-only ISO forms are read as UTC midnight.
var utcLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// Layouts that carry their own zone.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// Layouts without a zone are read in the local time zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 02 2006",
	"Mon, 02 Jan 2006",
}

// ParseDate reads text the way a browser's Date constructor does for the
// formats users actually type or inputs emit. ok is false for anything it
// cannot read, the equivalent of an "Invalid Date".
func ParseDate(text string) (t time.Time, ok bool) {
	return parseDateIn(text, time.Local)
}

func parseDateIn(text string, loc *time.Location) (time.Time, bool) {
	text = stripZoneName(strings.TrimFunc(text, isFormSpace))
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// stripZoneName drops the " (Zone Name)" suffix that Date.toString appends
// after the GMT offset.
func stripZoneName(text string) string {
	if !strings.HasSuffix(text, ")") {
		return text
	}
	idx := strings.LastIndex(text, " (")
	if idx == -1 {
		return text
	}
	return strings.TrimFunc(text[:idx], isFormSpace)
}

// DateAfter reports whether a is strictly after b. It is false when either
// side cannot be parsed.
func DateAfter(a, b string) bool {
	ta, ok := ParseDate(a)
	if !ok {
		return false
	}

	tb, ok := ParseDate(b)
	if !ok {
		return false
	}

	return ta.After(tb)
}
