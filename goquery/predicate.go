// Package goquery implements twir.ArticleParser on top of goquery and the
// golang.org/x/net/html node tree.
package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Predicate reports whether a node belongs to a selection.
type Predicate interface {
	Match(n *html.Node) bool
}

// ByTag matches elements with the given tag name, ignoring case.
type ByTag string

// Match implements Predicate.
func (t ByTag) Match(n *html.Node) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, string(t))
}

// ByAttr matches elements whose attribute Key equals Value.
type ByAttr struct {
	Key   string
	Value string
}

// Match implements Predicate.
func (a ByAttr) Match(n *html.Node) bool {
	v, ok := attr(n, a.Key)
	return ok && v == a.Value
}

// HasAttr matches elements carrying the attribute, whatever its value.
type HasAttr string

// Match implements Predicate.
func (a HasAttr) Match(n *html.Node) bool {
	_, ok := attr(n, string(a))
	return ok
}

// HasClass matches elements whose class list contains the class.
type HasClass string

// Match implements Predicate.
func (c HasClass) Match(n *html.Node) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, class := range strings.Fields(v) {
		if class == string(c) {
			return true
		}
	}
	return false
}

// And matches nodes satisfying every predicate. An empty And matches
// every element.
type And []Predicate

// Match implements Predicate.
func (a And) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, p := range a {
		if !p.Match(n) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) (string, bool) {
	if n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
