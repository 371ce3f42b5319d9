package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"smscal/internal/gdrive"
	"smscal/internal/normalize"
)

var (
	// ErrMediaDownload marks a failed fetch of an inbound attachment.
	ErrMediaDownload = errors.New("media download failed")

	// ErrMediaUpload marks a failed upload to file storage. Items uploaded
	// before the failure are left in place; there is no rollback.
	ErrMediaUpload = errors.New("media upload failed")
)

const defaultCallTimeout = 15 * time.Second

// MediaItem is one downloaded inbound attachment. It is request-scoped and
// consumed exactly once.
type MediaItem struct {
	SourceURL   string
	Data        []byte
	ContentType string
}

// MediaFetcher downloads one attachment from the inbound transport.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, url string) ([]byte, string, error)
}

// Uploader stores one attachment in file storage and returns its public link.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (*gdrive.UploadedFile, error)
}

// Relay moves inbound media to file storage, naming files from the event
// title. Fan-out is concurrent but results are reassembled by input index so
// attachment numbering always follows the original order.
type Relay struct {
	fetcher     MediaFetcher
	uploader    Uploader
	callTimeout time.Duration
}

func New(fetcher MediaFetcher, uploader Uploader) *Relay {
	return &Relay{
		fetcher:     fetcher,
		uploader:    uploader,
		callTimeout: defaultCallTimeout,
	}
}

// Download fetches every URL concurrently. The result slice is in input
// order; the first failure (by input order) aborts the request.
func (r *Relay) Download(ctx context.Context, urls []string) ([]MediaItem, error) {
	items := make([]MediaItem, len(urls))
	errs := make([]error, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
			defer cancel()

			data, contentType, err := r.fetcher.FetchMedia(callCtx, url)
			if err != nil {
				errs[i] = fmt.Errorf("%w: %s: %v", ErrMediaDownload, url, err)
				return
			}
			items[i] = MediaItem{SourceURL: url, Data: data, ContentType: contentType}
		}(i, url)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Upload stores every item concurrently under names derived from eventTitle
// and the item's 1-based input index, and collects public view links in input
// order. A failure aborts the request but does not remove items already
// uploaded.
func (r *Relay) Upload(ctx context.Context, items []MediaItem, eventTitle string) ([]normalize.Attachment, error) {
	attachments := make([]normalize.Attachment, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		// Capture the index before dispatch; filenames are numbered by input
		// order, not completion order.
		filename := Filename(eventTitle, i+1, item.ContentType)

		wg.Add(1)
		go func(i int, item MediaItem, filename string) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
			defer cancel()

			uploaded, err := r.uploader.Upload(callCtx, filename, item.ContentType, item.Data)
			if err != nil {
				errs[i] = fmt.Errorf("%w: %s: %v", ErrMediaUpload, filename, err)
				return
			}
			attachments[i] = normalize.Attachment{URL: uploaded.ViewLink, Title: filename}
		}(i, item, filename)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return attachments, nil
}

// Filename derives the storage name for one attachment: the lower-cased,
// space-to-underscore event title, the 1-based index, and an extension taken
// from the content type's subtype.
func Filename(eventTitle string, index int, contentType string) string {
	safeTitle := strings.ReplaceAll(strings.ToLower(eventTitle), " ", "_")

	ext := contentType
	if idx := strings.LastIndex(contentType, "/"); idx >= 0 {
		ext = contentType[idx+1:]
	}

	return fmt.Sprintf("%s_%d.%s", safeTitle, index, ext)
}
