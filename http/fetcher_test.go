package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/twir"
	twirhttp "github.com/fwojciec/twir/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>This Week in Rust</body></html>"))
		}))
		defer server.Close()

		fetcher := twirhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>This Week in Rust</body></html>", html)
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agents <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := twirhttp.NewFetcher(twirhttp.WithUserAgent("test-agent"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", <-agents)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := twirhttp.NewFetcher(twirhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := twirhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns ENOTFOUND for missing issue", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := twirhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, twir.ENOTFOUND, twir.ErrorCode(err))
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		fetcher := twirhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}
