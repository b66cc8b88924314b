// Package slog provides decorators that log calls to brief services with
// log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brief"
)

// Ensure LoggingFetcher implements brief.Fetcher.
var _ brief.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Successful fetches log at
// Info, failures at Warn.
type LoggingFetcher struct {
	next   brief.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next brief.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size and latency.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		f.logger.Log(ctx, level, "fetch page",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher. Only failures are logged.
func (f *LoggingFetcher) Close() error {
	err := f.next.Close()
	if err != nil {
		f.logger.Warn("close fetcher", "err", err)
	}
	return err
}
