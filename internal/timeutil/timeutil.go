package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnparseable marks a value that cannot be read as a date/time at all.
// A value that merely lacks a UTC offset parses fine and is not this error.
var ErrUnparseable = errors.New("unparseable timestamp")

// naiveLayouts are the offset-less shapes the extractor is known to emit.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ResolveLocation loads the configured timezone identifier.
func ResolveLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return nil, fmt.Errorf("timezone identifier is required")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ParseStamp parses an ISO-8601-like timestamp. Offset-bearing values keep
// their instant; offset-less values are interpreted as wall-clock time in loc.
// The second return reports whether the value carried an explicit offset.
func ParseStamp(value string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true, nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%w: %q", ErrUnparseable, value)
}
