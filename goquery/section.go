package goquery

import (
	"strings"

	"github.com/fwojciec/twir"
	"golang.org/x/net/html"
)

// BuildNews extracts the news items listed under the layout's news heading.
func BuildNews(root *html.Node, layout twir.Layout) (twir.News, error) {
	links, err := buildLinks(root, layout.News, layout.DiscussMarker)
	if err != nil {
		return twir.News{}, err
	}
	return twir.News{Links: links}, nil
}

// BuildUpdates extracts the items listed under the layout's updates heading.
func BuildUpdates(root *html.Node, layout twir.Layout) (twir.Updates, error) {
	links, err := buildLinks(root, layout.Updates, layout.DiscussMarker)
	if err != nil {
		return twir.Updates{}, err
	}
	return twir.Updates{Links: links}, nil
}

// buildLinks finds the heading with the given id and extracts a link from
// every item of the first list that follows it within the same section.
// A section without a list yields an empty LinksList.
func buildLinks(root *html.Node, headingID, marker string) (twir.LinksList, error) {
	heading, ok := First(root, ByAttr{Key: "id", Value: headingID})
	if !ok {
		return nil, twir.Errorf(twir.EMISSINGSECTION, "section %q not found", headingID)
	}

	list, ok := NextInSection(heading, ByTag("ul"))
	if !ok {
		return twir.LinksList{}, nil
	}

	links := twir.LinksList{}
	for item := range Children(list, ByTag("li")) {
		link, err := ExtractLink(item, marker)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// BuildCrateOfWeek extracts the featured crate from the first paragraph
// following the layout's crate of the week heading.
func BuildCrateOfWeek(root *html.Node, layout twir.Layout) (twir.CrateOfWeek, error) {
	heading, ok := First(root, ByAttr{Key: "id", Value: layout.CrateOfWeek})
	if !ok {
		return twir.CrateOfWeek{}, twir.Errorf(twir.EMISSINGSECTION, "section %q not found", layout.CrateOfWeek)
	}

	para, ok := NextInSection(heading, ByTag("p"))
	if !ok {
		return twir.CrateOfWeek{}, twir.Errorf(twir.EMALFORMEDSECTION, "crate of the week: no description paragraph")
	}

	anchor, ok := First(para, ByTag("a"))
	if !ok {
		return twir.CrateOfWeek{}, twir.Errorf(twir.EMALFORMEDSECTION, "crate of the week: no crate link")
	}

	link, _ := selection(anchor).Attr("href")
	if link == "" {
		return twir.CrateOfWeek{}, twir.Errorf(twir.EMALFORMEDSECTION, "crate of the week: crate link has no href")
	}

	name := strings.TrimSpace(selection(anchor).Text())
	if name == "" {
		return twir.CrateOfWeek{}, twir.Errorf(twir.EMALFORMEDSECTION, "crate of the week: crate name is empty")
	}

	text := strings.TrimSpace(selection(para).Text())

	return twir.CrateOfWeek{
		Name: twir.Escape(name),
		Text: twir.Escape(text),
		Link: twir.Escape(link),
	}, nil
}
