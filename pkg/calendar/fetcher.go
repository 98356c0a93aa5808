package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrInvalidFeed      = errors.New("invalid iCalendar feed")
)

// Fetcher downloads the raw text of a single iCal feed
type Fetcher struct {
	url    string
	client *http.Client
}

// NewFetcher creates a Fetcher for url. A nil client uses http.DefaultClient.
func NewFetcher(url string, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{url: url, client: client}
}

// URL returns the feed URL this fetcher reads from
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch retrieves the feed body. Failures are returned as-is; there are no retries.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/calendar, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	// Strip a UTF-8 BOM some feed generators prepend
	bodyStr := strings.TrimPrefix(string(body), "\ufeff")
	if err := validateICalFormat(bodyStr); err != nil {
		return "", err
	}

	log.Printf("  [FETCHED] %d bytes from %s", len(body), f.url)
	return bodyStr, nil
}

func validateICalFormat(bodyStr string) error {
	// Check if response is HTML instead of iCalendar
	upperBody := strings.ToUpper(strings.TrimSpace(bodyStr))
	if strings.HasPrefix(upperBody, "<!DOCTYPE") || strings.HasPrefix(upperBody, "<HTML") {
		return fmt.Errorf("%w: received HTML instead of iCalendar data", ErrInvalidFeed)
	}

	trimmed := strings.TrimSpace(bodyStr)
	if !strings.HasPrefix(trimmed, "BEGIN:VCALENDAR") {
		previewLen := 100
		if len(trimmed) < previewLen {
			previewLen = len(trimmed)
		}
		return fmt.Errorf("%w: expected BEGIN:VCALENDAR, got: %q",
			ErrInvalidFeed, trimmed[:previewLen])
	}

	return nil
}
