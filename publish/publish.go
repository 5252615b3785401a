// Package publish coordinates fetching, parsing and posting of issues.
package publish

import (
	"context"
	"fmt"

	"github.com/fwojciec/twir"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of issues loaded at once by LoadAll.
const DefaultConcurrency = 4

// Publisher orchestrates the pipeline for a single channel.
type Publisher struct {
	Fetcher     twir.Fetcher
	Parser      twir.ArticleParser
	Poster      twir.Poster
	Issues      twir.IssueStore
	Concurrency int
}

// Result holds the outcome of loading a single issue.
type Result struct {
	URL     string
	Article *twir.Article
	Err     error
}

// Load fetches and parses the issue at url.
func (p *Publisher) Load(ctx context.Context, url string) (*twir.Article, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	article, err := p.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return article, nil
}

// LoadAll loads every url concurrently. Results are returned in the order
// of urls; a failing issue does not stop the others.
func (p *Publisher) LoadAll(ctx context.Context, urls []string) []Result {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			article, err := p.Load(ctx, url)
			results[i] = Result{URL: url, Article: article, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Publish loads the issue at url and posts its messages in order.
//
// An issue that was already posted is rejected with ECONFLICT unless force
// is set. An article that cannot be recorded is rejected before anything is
// posted. The issue is recorded only after every message was delivered, so
// a failed run can be retried.
func (p *Publisher) Publish(ctx context.Context, url string, force bool) (*twir.Article, error) {
	article, err := p.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	issue := &twir.Issue{ID: article.ID, Date: article.Date, Link: article.Link}
	if err := issue.Validate(); err != nil {
		return nil, err
	}

	posted, err := p.wasPosted(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	if posted && !force {
		return nil, twir.Errorf(twir.ECONFLICT, "issue #%d already posted", article.ID)
	}

	for i, msg := range twir.Messages(article) {
		if err := p.Poster.Post(ctx, msg); err != nil {
			return nil, fmt.Errorf("post message %d of issue #%d: %w", i+1, article.ID, err)
		}
	}

	if p.Issues == nil {
		return article, nil
	}

	if posted {
		if err := p.Issues.DeleteIssue(ctx, article.ID); err != nil {
			return nil, err
		}
	}

	if err := p.Issues.MarkPosted(ctx, issue); err != nil {
		return nil, err
	}
	return article, nil
}

func (p *Publisher) wasPosted(ctx context.Context, id int) (bool, error) {
	if p.Issues == nil {
		return false, nil
	}
	_, err := p.Issues.FindIssueByID(ctx, id)
	switch twir.ErrorCode(err) {
	case "":
		return true, nil
	case twir.ENOTFOUND:
		return false, nil
	default:
		return false, err
	}
}
