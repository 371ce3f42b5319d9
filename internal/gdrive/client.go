package gdrive

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Drive API client for attachment uploads. It shares
// the refresh-token credential owned by the Calendar client.
type Client struct {
	service  *drive.Service
	folderID string
}

// NewClient creates a Drive client targeting a single destination folder.
func NewClient(ctx context.Context, config *oauth2.Config, token *oauth2.Token, folderID string) (*Client, error) {
	httpClient := config.Client(ctx, token)
	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Client{service: service, folderID: folderID}, nil
}

// UploadedFile identifies a stored object and its public view link.
type UploadedFile struct {
	ID       string
	ViewLink string
}

// Upload stores data under name in the configured folder and makes it
// readable by anyone with the link.
func (c *Client) Upload(ctx context.Context, name, contentType string, data []byte) (*UploadedFile, error) {
	if c.service == nil {
		return nil, fmt.Errorf("drive service not initialized")
	}

	meta := &drive.File{
		Name:    name,
		Parents: []string{c.folderID},
	}

	created, err := c.service.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	perm := &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}
	if _, err := c.service.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("failed to set public permission on %s: %w", name, err)
	}

	return &UploadedFile{ID: created.Id, ViewLink: created.WebViewLink}, nil
}
