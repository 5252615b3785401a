package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/twir"
)

// Ensure LoggingPoster implements twir.Poster.
var _ twir.Poster = (*LoggingPoster)(nil)

// LoggingPoster wraps a Poster with logging.
type LoggingPoster struct {
	next   twir.Poster
	logger *slog.Logger
}

// NewLoggingPoster creates a new LoggingPoster.
func NewLoggingPoster(next twir.Poster, logger *slog.Logger) *LoggingPoster {
	return &LoggingPoster{next: next, logger: logger}
}

// Post delegates to the wrapped poster and logs the operation.
func (p *LoggingPoster) Post(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("post",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Post(ctx, text)
}
