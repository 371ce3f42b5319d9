package twilio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultContentType = "application/octet-stream"

// Client downloads MMS media from Twilio's CDN using account basic auth.
type Client struct {
	accountSID string
	authToken  string
	httpClient *http.Client
}

func NewClient(accountSID, authToken string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchMedia downloads one media object and returns its bytes and declared
// content type.
func (c *Client) FetchMedia(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create media request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("media fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}
