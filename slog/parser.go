package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/twir"
)

// Ensure LoggingParser implements twir.ArticleParser.
var _ twir.ArticleParser = (*LoggingParser)(nil)

// LoggingParser wraps an ArticleParser, logging section sizes on success and
// the error code on failure.
type LoggingParser struct {
	next   twir.ArticleParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next twir.ArticleParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(html string) (article *twir.Article, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Info("parse",
				"bytes", len(html),
				"code", twir.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		p.logger.Info("parse",
			"issue", article.ID,
			"news", len(article.News.Links),
			"updates", len(article.Updates.Links),
			"crate", article.CrateOfWeek.Name,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Parse(html)
}
