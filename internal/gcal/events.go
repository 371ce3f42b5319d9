package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

// EventInput represents the input for creating a calendar event
type EventInput struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TimeZone    string
	Attachments []AttachmentInput
}

// AttachmentInput is a Drive link attached to the event.
type AttachmentInput struct {
	FileURL string
	Title   string
}

// CreatedEvent identifies a successfully submitted event.
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// CreateEvent creates a new event in Google Calendar and returns its ID and link.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, input EventInput) (*CreatedEvent, error) {
	if c.service == nil {
		return nil, fmt.Errorf("calendar service not initialized")
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.StartTime.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.EndTime.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
	}

	if len(input.Attachments) > 0 {
		attachments := make([]*calendar.EventAttachment, len(input.Attachments))
		for i, att := range input.Attachments {
			attachments[i] = &calendar.EventAttachment{
				FileUrl: att.FileURL,
				Title:   att.Title,
			}
		}
		event.Attachments = attachments
	}

	created, err := c.service.Events.Insert(calendarID, event).
		SupportsAttachments(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}
