package xapi

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayLayout renders timestamps the way the learner view shows them.
const DisplayLayout = "Jan 2, 2006 3:04 PM"

var ErrEmptyTimestamp = errors.New("empty timestamp")

// ParseTimestamp parses an xAPI timestamp. ISO-8601 with any fractional
// precision is handled directly; anything else goes through dateparse,
// interpreting zone-less values as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTimestamp
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

// FormatTimestamp renders a raw statement timestamp in loc. Unparsable input
// is returned unchanged.
func FormatTimestamp(raw string, loc *time.Location) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return raw
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}
