package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/twir/mock"
	twirslog "github.com/fwojciec/twir/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issueURL = "https://this-week-in-rust.org/blog/2018/08/28/this-week-in-rust-250/"

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs url, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>issue 250</html>", nil
			},
		}

		fetcher := twirslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), issueURL)

		require.NoError(t, err)
		assert.Equal(t, "<html>issue 250</html>", html)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url="+issueURL)
		assert.Contains(t, output, "bytes=22")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection reset")
			},
		}

		fetcher := twirslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), issueURL)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection reset\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := twirslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}
