package mock

import (
	"context"
	"io"

	"github.com/fwojciec/brief"
)

var (
	_ brief.Fetcher        = (*Fetcher)(nil)
	_ brief.Extractor      = (*Extractor)(nil)
	_ brief.PDFExtractor   = (*PDFExtractor)(nil)
	_ brief.ContentService = (*ContentService)(nil)
)

// Fetcher is a mock implementation of brief.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Extractor is a mock implementation of brief.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*brief.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*brief.ExtractResult, error) {
	return e.ExtractFn(html)
}

// PDFExtractor is a mock implementation of brief.PDFExtractor.
type PDFExtractor struct {
	ExtractFn func(r io.ReaderAt, size int64) (*brief.PDFResult, error)
}

func (e *PDFExtractor) Extract(r io.ReaderAt, size int64) (*brief.PDFResult, error) {
	return e.ExtractFn(r, size)
}

// ContentService is a mock implementation of brief.ContentService.
type ContentService struct {
	ExtractURLFn func(ctx context.Context, url string) (*brief.Content, error)
	ExtractPDFFn func(ctx context.Context, name string, r io.ReaderAt, size int64) (*brief.Content, error)
}

func (s *ContentService) ExtractURL(ctx context.Context, url string) (*brief.Content, error) {
	return s.ExtractURLFn(ctx, url)
}

func (s *ContentService) ExtractPDF(ctx context.Context, name string, r io.ReaderAt, size int64) (*brief.Content, error) {
	return s.ExtractPDFFn(ctx, name, r, size)
}
