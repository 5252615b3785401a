package twir

import "context"

// Fetcher retrieves the HTML of an issue page.
type Fetcher interface {
	// Fetch returns the raw HTML found at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
