package twir

import (
	"context"
	"time"
)

// Issue records an issue that has been posted to the channel.
type Issue struct {
	ID       int       `json:"id"`
	Date     string    `json:"date"`
	Link     string    `json:"link"`
	PostedAt time.Time `json:"postedAt"`
}

// Validate returns an error if the issue contains invalid fields.
func (i *Issue) Validate() error {
	if i.ID <= 0 {
		return Errorf(EINVALID, "issue ID must be positive")
	}
	if i.Link == "" {
		return Errorf(EINVALID, "issue link required")
	}
	return nil
}

// IssueStore represents a service for tracking posted issues.
type IssueStore interface {
	// MarkPosted records the issue as posted.
	// Returns ECONFLICT if the issue was already recorded.
	MarkPosted(ctx context.Context, issue *Issue) error

	// FindIssueByID retrieves a posted issue by ID.
	// Returns ENOTFOUND if the issue has not been posted.
	FindIssueByID(ctx context.Context, id int) (*Issue, error)

	// FindIssues retrieves posted issues, most recent first.
	FindIssues(ctx context.Context, filter IssueFilter) ([]*Issue, error)

	// DeleteIssue forgets a posted issue so that it can be posted again.
	// Returns ENOTFOUND if the issue has not been posted.
	DeleteIssue(ctx context.Context, id int) error
}

// IssueFilter represents a filter for FindIssues.
type IssueFilter struct {
	ID *int `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
