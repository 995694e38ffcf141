package tz

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultName is the zone record dates are shown in unless configured otherwise.
const DefaultName = "Europe/Amsterdam"

// Amsterdam is the Europe/Amsterdam location (CET/CEST with automatic DST).
var Amsterdam *time.Location

func init() {
	var err error
	Amsterdam, err = time.LoadLocation(DefaultName)
	if err != nil {
		panic("tz: load " + DefaultName + ": " + err.Error())
	}
}

var ErrUnparsable = errors.New("tz: unparsable date")

// Layouts accepted by ParseISO8601, tried in order. Layouts without an
// offset are read in the target location.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO8601 parses an ISO-8601 date or date-time and returns it in loc.
func ParseISO8601(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = Amsterdam
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, ErrUnparsable
}

// Format renders t the way refusal messages show dates.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC1123Z)
}
