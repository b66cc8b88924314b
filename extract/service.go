// Package extract turns web pages and PDF uploads into plain text ready to
// be summarized.
package extract

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/brief"
)

// Messages returned when an extraction yields too little text.
const (
	URLTooShortMessage = "Could not extract meaningful content from URL"
	PDFTooShortMessage = "Could not extract text from PDF or PDF is empty"
)

// DefaultTitle is used when a page has no title or heading.
const DefaultTitle = "Untitled"

// Ensure Service implements brief.ContentService at compile time.
var _ brief.ContentService = (*Service)(nil)

// Service coordinates fetching and extraction.
type Service struct {
	Fetcher   brief.Fetcher
	Extractor brief.Extractor
	PDF       brief.PDFExtractor
}

// ExtractURL fetches url and extracts its main text.
// Fetch failures keep their message so the caller can show it.
func (s *Service) ExtractURL(ctx context.Context, url string) (*brief.Content, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, brief.Errorf(brief.EINVALID, "URL is required")
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, brief.Errorf(brief.EINTERNAL, "Failed to fetch URL: %v", err)
	}

	result, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, extractionError("Failed to extract content from URL", err)
	}

	title := strings.TrimSpace(result.Title)
	if title == "" {
		title = DefaultTitle
	}
	return brief.NewContent(result.Text, title, URLTooShortMessage)
}

// ExtractPDF extracts the text of every page of a PDF document.
// The title is name without its ".pdf" extension.
func (s *Service) ExtractPDF(ctx context.Context, name string, r io.ReaderAt, size int64) (*brief.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.PDF.Extract(r, size)
	if err != nil {
		return nil, extractionError("Failed to extract content from PDF", err)
	}

	content, err := brief.NewContent(result.Text, PDFTitle(name), PDFTooShortMessage)
	if err != nil {
		return nil, err
	}
	content.PageCount = result.Pages
	return content, nil
}

// PDFTitle derives a document title from an uploaded file name.
func PDFTitle(name string) string {
	if i := strings.LastIndex(strings.ToLower(name), ".pdf"); i >= 0 && i == len(name)-4 {
		return name[:i]
	}
	return name
}

// extractionError prefixes an extractor failure. Application errors keep
// their code; anything else is internal.
func extractionError(prefix string, err error) error {
	var e *brief.Error
	if errors.As(err, &e) {
		return brief.Errorf(e.Code, "%s: %s", prefix, e.Message)
	}
	return brief.Errorf(brief.EINTERNAL, "%s: %v", prefix, err)
}
