package goquery

import (
	"strings"

	"github.com/fwojciec/twir"
	"golang.org/x/net/html"
)

// ExtractLink builds a Link from an item node: its visible text without the
// trailing marker, and the href of its first anchor.
func ExtractLink(n *html.Node, marker string) (twir.Link, error) {
	anchor, ok := First(n, ByTag("a"))
	if !ok {
		return twir.Link{}, twir.Errorf(twir.EMISSINGANCHOR, "no anchor in %q", itemText(n, ""))
	}

	href, ok := selection(anchor).Attr("href")
	if !ok {
		return twir.Link{}, twir.Errorf(twir.EMISSINGTARGET, "anchor %q has no href", itemText(anchor, ""))
	}

	return twir.Link{
		Text:   twir.Escape(itemText(n, marker)),
		Target: twir.Escape(href),
	}, nil
}

// itemText returns the trimmed text of n with a trailing marker removed.
// Only a suffix is stripped; the marker elsewhere in the text is kept.
func itemText(n *html.Node, marker string) string {
	text := strings.TrimSpace(selection(n).Text())
	if marker != "" {
		text = strings.TrimSuffix(text, marker)
	}
	return text
}
