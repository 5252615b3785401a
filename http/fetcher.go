// Package http provides an HTTP-based implementation of twir.Fetcher
// for downloading issue pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/twir"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to the digest site.
const DefaultUserAgent = "twir-bot/1.0 (+https://github.com/fwojciec/twir)"

// Ensure Fetcher implements twir.Fetcher at compile time.
var _ twir.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves issue pages using plain HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", twir.Errorf(twir.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", twir.Errorf(twir.ENOTFOUND, "HTTP 404 for %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
