// Package release fetches Chrome for Testing release information.
//
// The Chrome for Testing project publishes a JSON feed describing the latest
// known-good version per channel (Stable, Beta, Dev, Canary) together with
// per-binary, per-platform download URLs. This package wraps that single
// endpoint behind a small client that is easy to point at a test server.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the last-known-good-versions feed with download URLs.
	DefaultEndpoint = "https://googlechromelabs.github.io/chrome-for-testing/last-known-good-versions-with-downloads.json"

	// ListingPageURL is the human-browsable listing, printed as a manual
	// fallback when automated download fails.
	ListingPageURL = "https://googlechromelabs.github.io/chrome-for-testing/"

	// DefaultHTTPTimeout is the default timeout for feed requests.
	DefaultHTTPTimeout = 10 * time.Second
)

// Channel names as they appear in the feed.
const (
	ChannelStable = "Stable"
	ChannelBeta   = "Beta"
	ChannelDev    = "Dev"
	ChannelCanary = "Canary"
)

// Binary names as they appear in the feed's downloads map.
const (
	BinaryChromeDriver = "chromedriver"
	BinaryChrome       = "chrome"
)

var (
	// ErrUnavailable indicates the feed could not be reached or returned a
	// non-200 status.
	ErrUnavailable = errors.New("release feed unavailable")

	// ErrMalformed indicates the feed was fetched but did not have the
	// expected structure.
	ErrMalformed = errors.New("release feed malformed")
)

// Download is a single downloadable artifact for one platform.
type Download struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Channel holds the version and download URLs for one release channel.
type Channel struct {
	Channel   string                `json:"channel"`
	Version   string                `json:"version"`
	Revision  string                `json:"revision"`
	Downloads map[string][]Download `json:"downloads"`
}

// Feed is the decoded last-known-good-versions feed.
type Feed struct {
	Timestamp string             `json:"timestamp"`
	Channels  map[string]Channel `json:"channels"`
}

// DownloadURL returns the archive URL for the given binary and platform.
func (c *Channel) DownloadURL(binary, platform string) (string, bool) {
	for _, d := range c.Downloads[binary] {
		if d.Platform == platform {
			return d.URL, true
		}
	}
	return "", false
}

// Client fetches release information from the Chrome for Testing feed.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a feed client with the given timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   DefaultEndpoint,
	}
}

// SetEndpoint sets the feed URL. This is intended for testing purposes.
func (c *Client) SetEndpoint(url string) {
	c.endpoint = url
}

// FetchFeed retrieves and decodes the full release feed.
func (c *Client) FetchFeed(ctx context.Context) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "driverup-release-checker")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var feed Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrMalformed, err)
	}

	return &feed, nil
}

// LatestStable fetches the feed and returns the Stable channel entry.
func (c *Client) LatestStable(ctx context.Context) (*Channel, error) {
	feed, err := c.FetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	stable, ok := feed.Channels[ChannelStable]
	if !ok || stable.Version == "" {
		return nil, fmt.Errorf("%w: no Stable channel in feed", ErrMalformed)
	}

	return &stable, nil
}
