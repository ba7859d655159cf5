package kernel

import (
	"strings"
	"time"

	"mealbox/internal/pkg/errs"
)

// TimestampLayout is the canonical stored form: fixed width and always UTC,
// so lexical order of stored values equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// timestampLayouts are tried in order when reading stored values; zone-less forms are read as UTC.
//
//nolint:gochecknoglobals // read-only table
var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CalendarDate is the UTC calendar date of a Timestamp.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Quarter returns the 1-indexed quarter, ceil(month/3).
func (d CalendarDate) Quarter() int {
	return (int(d.Month) + 2) / 3
}

// CalendarDateOf returns the UTC calendar date of t.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.UTC().Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Timestamp is an order's creation time as stored. Values restored from storage are
// kept verbatim and only parsed when a caller needs the calendar date, so a malformed
// value surfaces as a DateParseError exactly where it matters.
type Timestamp struct {
	raw string
}

// NewTimestamp captures t in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{raw: t.UTC().Format(TimestampLayout)}
}

// RestoreTimestamp wraps a stored value without parsing it.
func RestoreTimestamp(raw string) Timestamp {
	return Timestamp{raw: raw}
}

// String returns the stored form.
func (t Timestamp) String() string {
	return t.raw
}

// Time parses the stored form and returns it in UTC.
func (t Timestamp) Time() (time.Time, error) {
	value := strings.TrimSpace(t.raw)
	if value == "" {
		return time.Time{}, errs.NewDateParseError("created_at", t.raw)
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, errs.NewDateParseErrorWithCause("created_at", t.raw, lastErr)
}

// Calendar returns the UTC calendar date of the timestamp.
func (t Timestamp) Calendar() (CalendarDate, error) {
	parsed, err := t.Time()
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDateOf(parsed), nil
}

// MarshalText renders the stored form.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.raw), nil
}
