package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/twir"
	"golang.org/x/net/html"
)

// Ensure ArticleParser implements twir.ArticleParser at compile time.
var _ twir.ArticleParser = (*ArticleParser)(nil)

// ArticleParser parses issue pages laid out as described by a twir.Layout.
type ArticleParser struct {
	layout twir.Layout
}

// NewArticleParser creates a parser for the given layout.
func NewArticleParser(layout twir.Layout) *ArticleParser {
	if layout.DiscussMarker == "" {
		layout.DiscussMarker = twir.DefaultDiscussMarker
	}
	return &ArticleParser{layout: layout}
}

// Parse parses the HTML and assembles the issue.
func (p *ArticleParser) Parse(s string) (*twir.Article, error) {
	if err := p.layout.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, twir.Errorf(twir.EINVALID, "failed to parse HTML: %v", err)
	}

	return Assemble(doc.Get(0), p.layout)
}

// Assemble extracts a complete Article from a parsed document.
// The first failing field or section aborts assembly.
func Assemble(root *html.Node, layout twir.Layout) (*twir.Article, error) {
	id, err := issueID(root)
	if err != nil {
		return nil, err
	}

	date, err := issueDate(root)
	if err != nil {
		return nil, err
	}

	link, err := canonicalLink(root)
	if err != nil {
		return nil, err
	}

	news, err := BuildNews(root, layout)
	if err != nil {
		return nil, err
	}

	crate, err := BuildCrateOfWeek(root, layout)
	if err != nil {
		return nil, err
	}

	updates, err := BuildUpdates(root, layout)
	if err != nil {
		return nil, err
	}

	return &twir.Article{
		ID:          id,
		Date:        date,
		Link:        link,
		News:        news,
		CrateOfWeek: crate,
		Updates:     updates,
	}, nil
}

// issueID parses the number ending the post title, e.g. "This Week in Rust 250".
// Only unsigned, positive numbers are accepted.
func issueID(root *html.Node) (int, error) {
	title, ok := First(root, And{ByTag("h1"), HasClass("post-title")})
	if !ok {
		return 0, twir.Errorf(twir.EMISSINGSECTION, "post title not found")
	}

	fields := strings.Fields(selection(title).Text())
	if len(fields) == 0 {
		return 0, twir.Errorf(twir.EINVALIDID, "post title is empty")
	}

	last := fields[len(fields)-1]
	if strings.TrimLeft(last, "0123456789") != "" {
		return 0, twir.Errorf(twir.EINVALIDID, "issue number %q is not numeric", last)
	}
	id, err := strconv.Atoi(last)
	if err != nil {
		return 0, twir.Errorf(twir.EINVALIDID, "issue number %q is out of range", last)
	}
	if id <= 0 {
		return 0, twir.Errorf(twir.EINVALIDID, "issue number must be positive, got %d", id)
	}
	return id, nil
}

func issueDate(root *html.Node) (string, error) {
	t, ok := First(root, ByTag("time"))
	if !ok {
		return "", twir.Errorf(twir.EMISSINGSECTION, "publication date not found")
	}
	date := strings.TrimSpace(selection(t).Text())
	if date == "" {
		return "", twir.Errorf(twir.EMISSINGSECTION, "publication date is empty")
	}
	return twir.Escape(date), nil
}

// canonicalLink returns the canonical issue URL unescaped.
func canonicalLink(root *html.Node) (string, error) {
	n, ok := First(root, And{ByTag("link"), ByAttr{Key: "rel", Value: "canonical"}})
	if !ok {
		return "", twir.Errorf(twir.EMISSINGSECTION, "canonical link not found")
	}
	href, _ := selection(n).Attr("href")
	if href == "" {
		return "", twir.Errorf(twir.EMISSINGSECTION, "canonical link has no href")
	}
	return href, nil
}
