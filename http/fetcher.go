// Package http serves the brief HTTP API and provides an HTTP-based
// implementation of brief.Fetcher for pages that don't require JavaScript
// rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/brief"
)

// Fetcher defaults.
const (
	// DefaultFetchTimeout matches rod.DefaultFetchTimeout.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultUserAgent is sent with every request. Some news sites refuse
	// clients that don't look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultMaxBodyBytes caps how much of a page body is read. Longer
	// bodies are cut off at this size.
	DefaultMaxBodyBytes = 5 << 20
)

// Ensure Fetcher implements brief.Fetcher at compile time.
var _ brief.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// Bodies larger than the configured limit are silently truncated, which may
// leave the markup unclosed. The extractors parse with error-tolerant HTML
// parsers, so a truncated page still yields the text before the cut.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close drops idle keep-alive connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
