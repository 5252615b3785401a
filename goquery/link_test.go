package goquery_test

import (
	"testing"

	"github.com/fwojciec/twir"
	"github.com/fwojciec/twir/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestExtractLink(t *testing.T) {
	t.Parallel()

	item := func(t *testing.T, s string) *html.Node {
		t.Helper()
		root := parse(t, "<ul>"+s+"</ul>")
		n, ok := goquery.First(root, goquery.ByTag("li"))
		require.True(t, ok)
		return n
	}

	t.Run("extracts text and target", func(t *testing.T) {
		t.Parallel()

		n := item(t, `<li><a href="https://example.com/a">Rust 2.0 released</a>. <a href="https://reddit.com/r/rust">[discuss]</a></li>`)

		link, err := goquery.ExtractLink(n, twir.DefaultDiscussMarker)
		require.NoError(t, err)
		assert.Equal(t, twir.Link{Text: "Rust 2.0 released", Target: "https://example.com/a"}, link)
	})

	t.Run("strips marker only as a suffix", func(t *testing.T) {
		t.Parallel()

		n := item(t, `<li><a href="/a">Why. [discuss] matters</a></li>`)

		link, err := goquery.ExtractLink(n, twir.DefaultDiscussMarker)
		require.NoError(t, err)
		assert.Equal(t, "Why. [discuss] matters", link.Text)
	})

	t.Run("escapes text and target", func(t *testing.T) {
		t.Parallel()

		n := item(t, `<li><a href="/search?a=1&amp;b=2">Vec&lt;T&gt; &amp; you</a></li>`)

		link, err := goquery.ExtractLink(n, twir.DefaultDiscussMarker)
		require.NoError(t, err)
		assert.Equal(t, "Vec&lt;T&gt; &amp; you", link.Text)
		assert.Equal(t, "/search?a=1&amp;b=2", link.Target)
	})

	t.Run("returns EMISSINGANCHOR without anchor", func(t *testing.T) {
		t.Parallel()

		n := item(t, `<li>plain text</li>`)

		link, err := goquery.ExtractLink(n, twir.DefaultDiscussMarker)
		require.Error(t, err)
		assert.Equal(t, twir.EMISSINGANCHOR, twir.ErrorCode(err))
		assert.Zero(t, link)
	})

	t.Run("returns EMISSINGTARGET without href", func(t *testing.T) {
		t.Parallel()

		n := item(t, `<li><a name="x">anchor</a></li>`)

		_, err := goquery.ExtractLink(n, twir.DefaultDiscussMarker)
		require.Error(t, err)
		assert.Equal(t, twir.EMISSINGTARGET, twir.ErrorCode(err))
	})
}
