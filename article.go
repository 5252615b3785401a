package twir

// Link is a single news or update item. Both fields are escaped.
type Link struct {
	Text   string
	Target string
}

// LinksList is an ordered sequence of links in document order.
// Duplicates are allowed.
type LinksList []Link

// News holds all news items of an issue.
type News struct {
	Links LinksList
}

// Updates holds the "Updates from Rust Core" items of an issue.
type Updates struct {
	Links LinksList
}

// CrateOfWeek is the featured crate of an issue. All fields are escaped.
type CrateOfWeek struct {
	Name string
	Text string
	Link string
}

// Article is a fully extracted issue.
//
// Every string reachable from Article has been escaped exactly once, with
// the exception of Link, which is the canonical issue URL and is stored
// as found in the document. Date counts as escaped text: it is escaped at
// extraction like the link and crate fields.
type Article struct {
	ID          int
	Date        string
	Link        string
	News        News
	CrateOfWeek CrateOfWeek
	Updates     Updates
}

// ArticleParser assembles an Article from an issue's HTML.
type ArticleParser interface {
	// Parse extracts all sections of the issue.
	// No partial Article is returned on error; the error code identifies
	// which document-structure assumption failed.
	Parse(html string) (*Article, error)
}
