package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/twir"
)

// Compile-time interface verification.
var _ twir.IssueStore = (*IssueStore)(nil)

// IssueStore implements twir.IssueStore using SQLite.
type IssueStore struct {
	db  *DB
	now func() time.Time
}

// NewIssueStore creates a new IssueStore.
func NewIssueStore(db *DB) *IssueStore {
	return &IssueStore{db: db, now: time.Now}
}

// MarkPosted records the issue as posted, setting PostedAt.
func (s *IssueStore) MarkPosted(ctx context.Context, issue *twir.Issue) error {
	if err := issue.Validate(); err != nil {
		return err
	}

	postedAt := s.now().UTC().Truncate(time.Second)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO issues (id, date, link, posted_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, issue.ID, issue.Date, issue.Link, postedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return twir.Errorf(twir.ECONFLICT, "issue #%d already posted", issue.ID)
	}

	issue.PostedAt = postedAt
	return nil
}

// FindIssueByID retrieves a posted issue by ID.
func (s *IssueStore) FindIssueByID(ctx context.Context, id int) (*twir.Issue, error) {
	issues, err := s.FindIssues(ctx, twir.IssueFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, twir.Errorf(twir.ENOTFOUND, "issue #%d not posted", id)
	}
	return issues[0], nil
}

// FindIssues retrieves posted issues, highest issue number first.
func (s *IssueStore) FindIssues(ctx context.Context, filter twir.IssueFilter) ([]*twir.Issue, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, date, link, posted_at FROM issues WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY id DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []*twir.Issue
	for rows.Next() {
		var issue twir.Issue
		var postedAt string

		if err := rows.Scan(&issue.ID, &issue.Date, &issue.Link, &postedAt); err != nil {
			return nil, err
		}

		issue.PostedAt, err = parseTimestamp(postedAt, "posted_at")
		if err != nil {
			return nil, err
		}

		issues = append(issues, &issue)
	}

	return issues, rows.Err()
}

// DeleteIssue forgets a posted issue.
func (s *IssueStore) DeleteIssue(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return twir.Errorf(twir.ENOTFOUND, "issue #%d not posted", id)
	}
	return nil
}
