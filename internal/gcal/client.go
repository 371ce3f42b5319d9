package gcal

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// OAuthScopes covers event creation plus Drive uploads for attachments.
var OAuthScopes = []string{
	calendar.CalendarEventsScope,
	drive.DriveFileScope,
}

// Client wraps the Google Calendar API client. Authentication uses a
// long-lived refresh token supplied through configuration; there is no
// interactive OAuth flow in this deployment.
type Client struct {
	service *calendar.Service
	config  *oauth2.Config
	token   *oauth2.Token
}

// NewClient creates a Calendar client from refresh-token credentials.
func NewClient(ctx context.Context, clientID, clientSecret, refreshToken string) (*Client, error) {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       OAuthScopes,
	}
	token := &oauth2.Token{RefreshToken: refreshToken}

	httpClient := config.Client(ctx, token)
	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Client{
		service: service,
		config:  config,
		token:   token,
	}, nil
}

// GetOAuthConfig returns the OAuth config for use by other packages (e.g., Drive)
func (c *Client) GetOAuthConfig() *oauth2.Config {
	return c.config
}

// GetToken returns the refresh-token credential shared with other Google services.
func (c *Client) GetToken() *oauth2.Token {
	return c.token
}
