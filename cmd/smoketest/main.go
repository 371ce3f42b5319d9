// Package main provides a smoke-test driver for the message pipeline.
// The real Claude API is used for extraction; Google Calendar and Drive are
// stubbed so no events or files are actually created.
//
// Usage:
//
//	ANTHROPIC_API_KEY=sk-... go run cmd/smoketest/main.go "dinner with Sam tomorrow at 7pm"
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"smscal/internal/config"
	"smscal/internal/extract"
	"smscal/internal/gcal"
	"smscal/internal/gdrive"
	"smscal/internal/processor"
	"smscal/internal/relay"
)

type stubCalendar struct{}

func (stubCalendar) CreateEvent(ctx context.Context, calendarID string, input gcal.EventInput) (*gcal.CreatedEvent, error) {
	fmt.Printf("STUB calendar insert: %q %s -> %s (%s), %d attachment(s)\n",
		input.Summary,
		input.StartTime.Format("2006-01-02T15:04:05-07:00"),
		input.EndTime.Format("2006-01-02T15:04:05-07:00"),
		input.TimeZone,
		len(input.Attachments),
	)
	return &gcal.CreatedEvent{ID: "smoketest-event", HTMLLink: "https://calendar.google.com/smoketest"}, nil
}

type stubUploader struct{}

func (stubUploader) Upload(ctx context.Context, name, contentType string, data []byte) (*gdrive.UploadedFile, error) {
	fmt.Printf("STUB drive upload: %s (%s, %d bytes)\n", name, contentType, len(data))
	return &gdrive.UploadedFile{ID: "smoketest-file", ViewLink: "https://drive.google.com/smoketest/" + name}, nil
}

type stubFetcher struct{}

func (stubFetcher) FetchMedia(ctx context.Context, url string) ([]byte, string, error) {
	return []byte("smoketest media"), "image/jpeg", nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: smoketest <message text>")
		os.Exit(1)
	}
	message := strings.Join(os.Args[1:], " ")

	cfg := config.LoadFromEnv()
	if cfg.AnthropicAPIKey == "" {
		fmt.Fprintln(os.Stderr, "ANTHROPIC_API_KEY is required")
		os.Exit(1)
	}

	extractor := extract.NewClient(cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.ClaudeTemperature)

	proc, err := processor.New(processor.Config{
		Extractor:  extractor,
		Relay:      relay.New(stubFetcher{}, stubUploader{}),
		Calendar:   stubCalendar{},
		CalendarID: cfg.CalendarID,
		Timezone:   cfg.Timezone,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating processor: %v\n", err)
		os.Exit(1)
	}

	reply := proc.HandleMessage(context.Background(), message, nil)
	fmt.Printf("Reply: %s\n", reply)
}
