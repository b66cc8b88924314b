package slog

import (
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/brief"
)

var (
	_ brief.Extractor    = (*LoggingExtractor)(nil)
	_ brief.PDFExtractor = (*LoggingPDFExtractor)(nil)
)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   brief.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next brief.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the extraction and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (result *brief.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var chars int
		if result != nil {
			title, chars = result.Title, utf8.RuneCountInString(result.Text)
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"title", title,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

// LoggingPDFExtractor wraps a PDFExtractor with debug logging.
type LoggingPDFExtractor struct {
	next   brief.PDFExtractor
	logger *slog.Logger
}

// NewLoggingPDFExtractor creates a new LoggingPDFExtractor.
func NewLoggingPDFExtractor(next brief.PDFExtractor, logger *slog.Logger) *LoggingPDFExtractor {
	return &LoggingPDFExtractor{next: next, logger: logger}
}

// Extract logs the extraction and delegates to the wrapped extractor.
func (e *LoggingPDFExtractor) Extract(r io.ReaderAt, size int64) (result *brief.PDFResult, err error) {
	defer func(begin time.Time) {
		var pages, chars int
		if result != nil {
			pages, chars = result.Pages, utf8.RuneCountInString(result.Text)
		}
		e.logger.Debug("extract pdf",
			"bytes", size,
			"pages", pages,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(r, size)
}
