// Package fs provides file-based implementations for reading saved issue
// pages and archiving rendered issues.
package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/twir"
)

// Ensure Fetcher implements twir.Fetcher at compile time.
var _ twir.Fetcher = (*Fetcher)(nil)

// Fetcher reads issue pages saved on the local filesystem.
// It accepts plain paths and file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// IsLocal reports whether the location refers to a local file rather than
// an http(s) URL.
func IsLocal(location string) bool {
	return !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://")
}

// Fetch reads the file at location.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := toPath(location)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", twir.Errorf(twir.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}

func toPath(location string) (string, error) {
	if !strings.HasPrefix(location, "file://") {
		return location, nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return "", twir.Errorf(twir.EINVALID, "invalid file URL %q: %v", location, err)
	}
	return u.Path, nil
}
