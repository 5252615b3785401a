package goquery

import (
	"iter"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Select returns the descendants of root matching p in document order.
// Every range over the returned sequence starts a fresh traversal.
func Select(root *html.Node, p Predicate) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		if root == nil {
			return
		}
		walk(root, p, yield)
	}
}

func walk(n *html.Node, p Predicate, yield func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if p.Match(c) && !yield(c) {
			return false
		}
		if !walk(c, p, yield) {
			return false
		}
	}
	return true
}

// Children returns the direct children of n matching p.
func Children(n *html.Node, p Predicate) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		if n == nil {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if p.Match(c) && !yield(c) {
				return
			}
		}
	}
}

// First returns the first descendant of root matching p.
func First(root *html.Node, p Predicate) (*html.Node, bool) {
	for n := range Select(root, p) {
		return n, true
	}
	return nil, false
}

// NextInSection returns the first element sibling after n that matches p.
// The scan stops at the next heading, which starts another section.
func NextInSection(n *html.Node, p Predicate) (*html.Node, bool) {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		if p.Match(s) {
			return s, true
		}
		if isHeading(s) {
			return nil, false
		}
	}
	return nil, false
}

func isHeading(n *html.Node) bool {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// selection wraps a single node for goquery's text and attribute helpers.
func selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}
