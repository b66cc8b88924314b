// Package rod provides a brief.Fetcher that renders pages in headless
// Chrome, for sites whose content is built by JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/brief"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the number of pages rendered before the browser is
// restarted. Chrome's memory use grows with every page and never returns
// to its baseline.
const DefaultMaxPages = 75

// Ensure Fetcher implements brief.Fetcher at compile time.
var _ brief.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout  time.Duration
	maxPages int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single page load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before the browser is
// restarted. Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	f.browser, f.launcher = browser, l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// acquire returns the browser for the next page, restarting it once
// maxPages pages have been rendered. A failed restart keeps the old browser.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, brief.Errorf(brief.EINVALID, "fetcher is closed")
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		if browser, l, err := launch(); err == nil {
			_ = f.browser.Close()
			f.launcher.Kill()
			f.browser, f.launcher, f.pages = browser, l, 0
		}
	}
	f.pages++
	return f.browser, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.launcher.PID()
}

// launch starts a headless browser with flags that keep long-running
// sessions stable.
func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}
