package mock

import (
	"context"

	"github.com/fwojciec/twir"
)

var _ twir.IssueStore = (*IssueStore)(nil)

// IssueStore is a mock implementation of twir.IssueStore.
type IssueStore struct {
	MarkPostedFn    func(ctx context.Context, issue *twir.Issue) error
	FindIssueByIDFn func(ctx context.Context, id int) (*twir.Issue, error)
	FindIssuesFn    func(ctx context.Context, filter twir.IssueFilter) ([]*twir.Issue, error)
	DeleteIssueFn   func(ctx context.Context, id int) error
}

func (s *IssueStore) MarkPosted(ctx context.Context, issue *twir.Issue) error {
	return s.MarkPostedFn(ctx, issue)
}

func (s *IssueStore) FindIssueByID(ctx context.Context, id int) (*twir.Issue, error) {
	return s.FindIssueByIDFn(ctx, id)
}

func (s *IssueStore) FindIssues(ctx context.Context, filter twir.IssueFilter) ([]*twir.Issue, error) {
	return s.FindIssuesFn(ctx, filter)
}

func (s *IssueStore) DeleteIssue(ctx context.Context, id int) error {
	return s.DeleteIssueFn(ctx, id)
}
