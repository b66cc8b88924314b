// Package pdf provides a brief.PDFExtractor backed by ledongthuc/pdf.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/brief"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements brief.PDFExtractor at compile time.
var _ brief.PDFExtractor = (*Extractor)(nil)

// Extractor reads the plain text of every page of a PDF document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of all pages, separated by spaces, and the page
// count. Pages without a content stream contribute no text.
func (e *Extractor) Extract(r io.ReaderAt, size int64) (result *brief.PDFResult, err error) {
	// The parser panics on some malformed documents.
	defer func() {
		if p := recover(); p != nil {
			result, err = nil, brief.Errorf(brief.EINVALID, "malformed PDF: %v", p)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, brief.Errorf(brief.EINVALID, "failed to parse PDF: %v", err)
	}

	n := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteByte(' ')
	}

	return &brief.PDFResult{Text: b.String(), Pages: n}, nil
}
