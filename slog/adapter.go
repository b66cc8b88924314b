package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/brief"
)

var (
	_ brief.Adapter           = (*LoggingAdapter)(nil)
	_ brief.Reducer           = (*LoggingAdapter)(nil)
	_ brief.CredentialChecker = (*LoggingAdapter)(nil)
)

// LoggingAdapter wraps a provider Adapter with logging.
type LoggingAdapter struct {
	next     brief.Adapter
	provider brief.Provider
	logger   *slog.Logger
}

// NewLoggingAdapter creates a new LoggingAdapter for provider.
func NewLoggingAdapter(next brief.Adapter, provider brief.Provider, logger *slog.Logger) *LoggingAdapter {
	return &LoggingAdapter{next: next, provider: provider, logger: logger}
}

// DefaultModel delegates to the wrapped adapter.
func (a *LoggingAdapter) DefaultModel() string {
	return a.next.DefaultModel()
}

// SummarizeOne logs the provider call and delegates to the wrapped adapter.
func (a *LoggingAdapter) SummarizeOne(ctx context.Context, text, model string) (summary string, err error) {
	defer a.log(ctx, "summarize", text, model, &summary, &err)(time.Now())
	return a.next.SummarizeOne(ctx, text, model)
}

// Reduce delegates to the wrapped adapter's Reduce, or to SummarizeOne if
// it has none.
func (a *LoggingAdapter) Reduce(ctx context.Context, text, model string) (summary string, err error) {
	defer a.log(ctx, "reduce", text, model, &summary, &err)(time.Now())
	if r, ok := a.next.(brief.Reducer); ok {
		return r.Reduce(ctx, text, model)
	}
	return a.next.SummarizeOne(ctx, text, model)
}

// Configured delegates to the wrapped adapter. Adapters that can't tell
// are reported as configured.
func (a *LoggingAdapter) Configured() bool {
	if c, ok := a.next.(brief.CredentialChecker); ok {
		return c.Configured()
	}
	return true
}

func (a *LoggingAdapter) log(ctx context.Context, msg, text, model string, summary *string, err *error) func(time.Time) {
	return func(begin time.Time) {
		level := slog.LevelInfo
		if *err != nil {
			level = slog.LevelWarn
		}
		a.logger.Log(ctx, level, msg,
			"provider", string(a.provider),
			"model", model,
			"chars", utf8.RuneCountInString(text),
			"summary_chars", utf8.RuneCountInString(*summary),
			"duration", time.Since(begin),
			"err", *err,
		)
	}
}
