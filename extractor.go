package brief

import (
	"context"
	"io"
	"strings"
)

// MinContentLength is the minimum number of characters an extraction must
// yield for its content to be worth summarizing.
const MinContentLength = 100

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata or headings.
	Title string

	// Text is the main content as plain text.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Text string
}

// Extractor extracts the main text from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// PDFResult holds the text extracted from a PDF document.
type PDFResult struct {
	Text  string
	Pages int
}

// PDFExtractor extracts text from all pages of a PDF document.
type PDFExtractor interface {
	Extract(r io.ReaderAt, size int64) (*PDFResult, error)
}

// Content is extracted text ready to be summarized.
type Content struct {
	Content   string `json:"content"`
	Title     string `json:"title"`
	WordCount int    `json:"wordCount"`
	PageCount int    `json:"pageCount,omitempty"`
}

// NewContent normalizes whitespace in text and builds a Content.
// Returns EINVALID with failMsg if the normalized text is shorter than
// MinContentLength.
func NewContent(text, title, failMsg string) (*Content, error) {
	normalized := CollapseWhitespace(text)
	if len([]rune(normalized)) < MinContentLength {
		return nil, Errorf(EINVALID, "%s", failMsg)
	}
	return &Content{
		Content:   normalized,
		Title:     strings.TrimSpace(title),
		WordCount: WordCount(normalized),
	}, nil
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContentService extracts summarizable text from web pages and PDFs.
type ContentService interface {
	// ExtractURL fetches url and extracts its main text.
	// Returns EINVALID if the page yields less than MinContentLength characters.
	ExtractURL(ctx context.Context, url string) (*Content, error)

	// ExtractPDF extracts the text of every page of a PDF document.
	// The title is derived from name. Returns EINVALID if the document
	// yields less than MinContentLength characters.
	ExtractPDF(ctx context.Context, name string, r io.ReaderAt, size int64) (*Content, error)
}
