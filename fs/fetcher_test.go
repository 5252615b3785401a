package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/twir"
	"github.com/fwojciec/twir/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{name: "https URL", location: "https://this-week-in-rust.org/", want: false},
		{name: "http URL", location: "http://localhost:8080/issue", want: false},
		{name: "file URL", location: "file:///tmp/issue.html", want: true},
		{name: "relative path", location: "testdata/issue.html", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.IsLocal(tt.location))
		})
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads plain path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "issue.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		html, err := fs.NewFetcher().Fetch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
	})

	t.Run("reads file URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "issue.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>file</html>"), 0644))

		html, err := fs.NewFetcher().Fetch(context.Background(), "file://"+path)
		require.NoError(t, err)
		assert.Equal(t, "<html>file</html>", html)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
		require.Error(t, err)
		assert.Equal(t, twir.ENOTFOUND, twir.ErrorCode(err))
	})

	t.Run("returns error for canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewFetcher().Fetch(ctx, "issue.html")
		require.ErrorIs(t, err, context.Canceled)
	})
}
