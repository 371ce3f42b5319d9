package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smscal/internal/timeutil"
)

var (
	// ErrTemporalParse marks a candidate timestamp that cannot be read as a
	// date/time at all. A value that merely lacks an offset never raises it.
	ErrTemporalParse = errors.New("unparseable event time")

	// ErrInvalidEventWindow marks an event whose end does not come after its
	// start. Windows are rejected, never clamped.
	ErrInvalidEventWindow = errors.New("event end must be after start")
)

const defaultDurationMinutes = 60

// timeContextKeywords are substrings whose presence in the original message is
// taken as evidence the sender actually stated a time. When an offset-less
// candidate start arrives with none of these in the message, the candidate is
// judged to be a placeholder the extractor invented and "now" is used instead.
// Deliberately a plain substring match; do not tokenize.
var timeContextKeywords = []string{
	"at", "pm", "am", ":",
	"tomorrow", "today", "tonight",
	"morning", "afternoon", "evening",
}

// Window is a fully resolved event time span. Both ends carry the configured
// timezone's offset and are truncated to whole seconds.
type Window struct {
	Start time.Time
	End   time.Time
}

// Normalize resolves a candidate start/end (either possibly absent or
// offset-less) into a canonical window in loc.
//
// The start side is gated on message keywords: an offset-less start with no
// time-context keyword in the message is treated as an extractor placeholder
// and replaced with now. The end side attaches the configured offset
// unconditionally. This asymmetry matches the deployed behavior and is
// intentional.
func Normalize(candidateStart, candidateEnd string, durationMinutes *int, messageText string, now time.Time, loc *time.Location) (Window, error) {
	start, err := resolveStart(candidateStart, messageText, now, loc)
	if err != nil {
		return Window{}, err
	}
	start = start.Truncate(time.Second)

	end, err := resolveEnd(candidateEnd, durationMinutes, start, loc)
	if err != nil {
		return Window{}, err
	}
	end = end.Truncate(time.Second)

	if !end.After(start) {
		return Window{}, fmt.Errorf("%w (start %s, end %s)",
			ErrInvalidEventWindow, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return Window{Start: start, End: end}, nil
}

func resolveStart(candidate, messageText string, now time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(candidate) == "" {
		return now.In(loc), nil
	}

	t, hadOffset, err := timeutil.ParseStamp(candidate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start %q", ErrTemporalParse, candidate)
	}

	if hadOffset {
		// Same instant, re-expressed with the configured offset.
		return t.In(loc), nil
	}

	if !hasTimeContext(messageText) {
		// No stated time in the message: the wall-clock fields are an
		// extractor default, not an extraction. Ignore them.
		return now.In(loc), nil
	}

	// The sender stated a time and the extractor dropped the offset; trust
	// the wall-clock fields as configured-timezone local time.
	return t, nil
}

func resolveEnd(candidate string, durationMinutes *int, start time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(candidate) != "" {
		t, hadOffset, err := timeutil.ParseStamp(candidate, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: end %q", ErrTemporalParse, candidate)
		}
		if hadOffset {
			return t.In(loc), nil
		}
		// No keyword gate on the end side: attach the offset unconditionally.
		return t, nil
	}

	minutes := defaultDurationMinutes
	if durationMinutes != nil {
		minutes = *durationMinutes
	}
	return start.Add(time.Duration(minutes) * time.Minute), nil
}

func hasTimeContext(messageText string) bool {
	lower := strings.ToLower(messageText)
	for _, kw := range timeContextKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
