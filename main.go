package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smscal/internal/config"
	"smscal/internal/extract"
	"smscal/internal/gcal"
	"smscal/internal/gdrive"
	"smscal/internal/processor"
	"smscal/internal/relay"
	"smscal/internal/server"
	"smscal/internal/twilio"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		fatal("loading configuration", err)
	}

	ctx := context.Background()

	gcalClient, err := gcal.NewClient(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken)
	if err != nil {
		fatal("creating calendar client", err)
	}

	driveClient, err := gdrive.NewClient(ctx, gcalClient.GetOAuthConfig(), gcalClient.GetToken(), cfg.DriveFolderID)
	if err != nil {
		fatal("creating drive client", err)
	}

	extractor := extract.NewClient(cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.ClaudeTemperature)
	fmt.Println("Extraction client configured")

	mediaRelay := relay.New(
		twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken),
		driveClient,
	)

	proc, err := processor.New(processor.Config{
		Extractor:  extractor,
		Relay:      mediaRelay,
		Calendar:   gcalClient,
		CalendarID: cfg.CalendarID,
		Timezone:   cfg.Timezone,
	})
	if err != nil {
		fatal("creating processor", err)
	}

	srv := server.New(server.ServerConfig{
		Processor: proc,
		Validator: twilio.NewValidator(cfg.TwilioAuthToken),
		Port:      cfg.HTTPPort,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
