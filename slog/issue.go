package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/twir"
)

// Ensure LoggingIssueStore implements twir.IssueStore.
var _ twir.IssueStore = (*LoggingIssueStore)(nil)

// LoggingIssueStore wraps an IssueStore with debug logging.
type LoggingIssueStore struct {
	next   twir.IssueStore
	logger *slog.Logger
}

// NewLoggingIssueStore creates a new LoggingIssueStore.
func NewLoggingIssueStore(next twir.IssueStore, logger *slog.Logger) *LoggingIssueStore {
	return &LoggingIssueStore{next: next, logger: logger}
}

// MarkPosted delegates to the wrapped store and logs the operation.
func (s *LoggingIssueStore) MarkPosted(ctx context.Context, issue *twir.Issue) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("mark posted",
			"issue", issue.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MarkPosted(ctx, issue)
}

// FindIssueByID delegates to the wrapped store and logs the lookup.
func (s *LoggingIssueStore) FindIssueByID(ctx context.Context, id int) (issue *twir.Issue, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find issue",
			"issue", id,
			"found", issue != nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindIssueByID(ctx, id)
}

// FindIssues delegates to the wrapped store and logs the listing.
func (s *LoggingIssueStore) FindIssues(ctx context.Context, filter twir.IssueFilter) (issues []*twir.Issue, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find issues",
			"limit", filter.Limit,
			"offset", filter.Offset,
			"count", len(issues),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindIssues(ctx, filter)
}

// DeleteIssue delegates to the wrapped store and logs the operation.
func (s *LoggingIssueStore) DeleteIssue(ctx context.Context, id int) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete issue",
			"issue", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteIssue(ctx, id)
}
