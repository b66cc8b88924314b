// Package trafilatura provides a brief.Extractor backed by go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/brief"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements brief.Extractor at compile time.
var _ brief.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
// The title comes from the page metadata.
func (e *Extractor) Extract(rawHTML string) (*brief.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, brief.Errorf(brief.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &brief.ExtractResult{
		Title: strings.TrimSpace(result.Metadata.Title),
		Text:  brief.CollapseWhitespace(result.ContentText),
	}, nil
}
