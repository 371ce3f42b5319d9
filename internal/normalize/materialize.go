package normalize

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingTitle marks a candidate event whose title is empty after trimming.
var ErrMissingTitle = errors.New("event title is required")

// Attachment is a public link to a relayed media file.
type Attachment struct {
	URL   string
	Title string
}

// Event is the final representation ready for calendar submission.
type Event struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attachments []Attachment
}

// Materialize assembles the final event. Pure data assembly: it validates the
// title, defaults the description, stamps the configured timezone label, and
// carries attachments through unmodified in order.
func Materialize(title, description string, w Window, timezone string, attachments []Attachment) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	return &Event{
		Title:       title,
		Description: strings.TrimSpace(description),
		Start:       w.Start,
		End:         w.End,
		TimeZone:    timezone,
		Attachments: attachments,
	}, nil
}
