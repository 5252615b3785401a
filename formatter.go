package twir

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatLink renders a single link as its text followed by its target,
// each on its own line.
func FormatLink(l Link) string {
	return l.Text + "\n" + l.Target + "\n"
}

// FormatLinks renders links separated by a blank line.
// Returns an empty string for an empty list.
func FormatLinks(links LinksList) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, FormatLink(l))
	}
	return strings.Join(parts, "\n")
}

// FormatHead renders the issue title line, date and canonical link.
func FormatHead(a *Article) string {
	date := cases.Lower(language.Und).String(a.Date)
	return "<b>This week in Rust #" + strconv.Itoa(a.ID) + "</b> — " + date + "\n\n" + a.Link
}

// FormatNews renders the news section.
func FormatNews(a *Article) string {
	return "<b>News</b>\n\n" + FormatLinks(a.News.Links)
}

// FormatCrateOfWeek renders the featured crate.
func FormatCrateOfWeek(a *Article) string {
	c := a.CrateOfWeek
	return "<b>Crate of the week:</b> <a href=\"" + c.Link + "\">" + c.Name + "</a>\n\n" + c.Text + "\n"
}

// FormatCoreUpdates renders the updates from core section.
func FormatCoreUpdates(a *Article) string {
	return "<b>Updates from core</b>\n\n" + FormatLinks(a.Updates.Links)
}

// Messages returns the rendered blocks of an issue in posting order.
func Messages(a *Article) []string {
	return []string{
		FormatHead(a),
		FormatNews(a),
		FormatCrateOfWeek(a),
		FormatCoreUpdates(a),
	}
}
