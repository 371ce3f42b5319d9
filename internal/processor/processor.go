package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"smscal/internal/extract"
	"smscal/internal/gcal"
	"smscal/internal/normalize"
	"smscal/internal/relay"
	"smscal/internal/timeutil"
)

const (
	extractTimeout = 30 * time.Second
	submitTimeout  = 15 * time.Second

	friendlyTimeLayout = "Monday, Jan 2 at 3:04 PM"
)

// CalendarService submits a materialized event to the calendar backend.
type CalendarService interface {
	CreateEvent(ctx context.Context, calendarID string, input gcal.EventInput) (*gcal.CreatedEvent, error)
}

// Processor runs the per-message pipeline: extract, normalize, relay media,
// materialize, submit. Each inbound message is handled independently; the
// processor holds no mutable state.
type Processor struct {
	extractor  extract.Extractor
	relay      *relay.Relay
	calendar   CalendarService
	calendarID string
	timezone   string
	loc        *time.Location
	now        func() time.Time
}

// Config holds processor dependencies and deployment settings.
type Config struct {
	Extractor  extract.Extractor
	Relay      *relay.Relay
	Calendar   CalendarService
	CalendarID string
	Timezone   string
}

func New(cfg Config) (*Processor, error) {
	loc, err := timeutil.ResolveLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &Processor{
		extractor:  cfg.Extractor,
		relay:      cfg.Relay,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		timezone:   cfg.Timezone,
		loc:        loc,
		now:        time.Now,
	}, nil
}

// HandleMessage runs the pipeline and returns the reply text for the sender.
// Every failure past this point becomes a single "Error: ..." reply; nothing
// escapes to the transport layer.
func (p *Processor) HandleMessage(ctx context.Context, body string, mediaURLs []string) string {
	reply, err := p.process(ctx, body, mediaURLs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process message: %v\n", err)
		return "Error: " + err.Error()
	}
	return reply
}

func (p *Processor) process(ctx context.Context, body string, mediaURLs []string) (string, error) {
	now := p.now().In(p.loc)

	// Media downloads do not depend on extraction; run them first.
	var items []relay.MediaItem
	if len(mediaURLs) > 0 {
		downloaded, err := p.relay.Download(ctx, mediaURLs)
		if err != nil {
			return "", err
		}
		items = downloaded
		fmt.Printf("Downloaded %d media files\n", len(items))
	}

	extractCtx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()
	candidate, err := p.extractor.Extract(extractCtx, body, extract.NewNowContext(now, p.timezone))
	if err != nil {
		return "", err
	}

	window, err := normalize.Normalize(
		candidate.Start,
		candidate.End,
		candidate.DurationMinutes,
		body,
		now,
		p.loc,
	)
	if err != nil {
		return "", err
	}

	// Uploads need the extracted title for filenames, so they run after
	// extraction even though they are independent of normalization.
	var attachments []normalize.Attachment
	if len(items) > 0 {
		attachments, err = p.relay.Upload(ctx, items, candidate.Title)
		if err != nil {
			return "", err
		}
	}

	event, err := normalize.Materialize(candidate.Title, candidate.Description, window, p.timezone, attachments)
	if err != nil {
		return "", err
	}

	input := gcal.EventInput{
		Summary:     event.Title,
		Description: event.Description,
		StartTime:   event.Start,
		EndTime:     event.End,
		TimeZone:    event.TimeZone,
	}
	for _, att := range event.Attachments {
		input.Attachments = append(input.Attachments, gcal.AttachmentInput{
			FileURL: att.URL,
			Title:   att.Title,
		})
	}

	submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()
	created, err := p.calendar.CreateEvent(submitCtx, p.calendarID, input)
	if err != nil {
		return "", err
	}

	fmt.Printf("Created calendar event %q (ID: %s)\n", event.Title, created.ID)

	return fmt.Sprintf("Created %q at %s (%s)",
		event.Title,
		event.Start.Format(friendlyTimeLayout),
		p.timezone,
	), nil
}
