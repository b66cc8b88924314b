// Package readability implements brief.Extractor with go-readability's
// article scoring, for pages where fixed selectors pick up too much chrome.
package readability

import (
	"strings"

	"github.com/fwojciec/brief"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements brief.Extractor at compile time.
var _ brief.Extractor = (*Extractor)(nil)

// Extractor keeps the highest scoring block of a page and drops the rest.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article text with whitespace collapsed. The title is
// the article title, or the site name when the page has none.
func (e *Extractor) Extract(rawHTML string) (*brief.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, brief.Errorf(brief.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, brief.Errorf(brief.EINVALID, "no readable article: %v", err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = strings.TrimSpace(article.SiteName)
	}

	return &brief.ExtractResult{
		Title: title,
		Text:  brief.CollapseWhitespace(article.TextContent),
	}, nil
}
