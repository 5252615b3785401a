package twir

// DefaultDiscussMarker is the suffix appended to news items linking to a
// discussion thread.
const DefaultDiscussMarker = ". [discuss]"

// Layout describes where each section lives in an issue page.
// Sections are located by the id attribute of their heading.
type Layout struct {
	News          string `yaml:"news"`
	CrateOfWeek   string `yaml:"crate_of_week"`
	Updates       string `yaml:"updates"`
	DiscussMarker string `yaml:"discuss_marker"`
}

// DefaultLayout returns the layout of the issue pages published on
// this-week-in-rust.org.
func DefaultLayout() Layout {
	return Layout{
		News:          "news-blog-posts",
		CrateOfWeek:   "crate-of-the-week",
		Updates:       "updates-from-rust-core",
		DiscussMarker: DefaultDiscussMarker,
	}
}

// Validate returns an error if a section heading id is missing.
func (l *Layout) Validate() error {
	if l.News == "" {
		return Errorf(EINVALID, "layout news heading id required")
	}
	if l.CrateOfWeek == "" {
		return Errorf(EINVALID, "layout crate of the week heading id required")
	}
	if l.Updates == "" {
		return Errorf(EINVALID, "layout updates heading id required")
	}
	return nil
}
