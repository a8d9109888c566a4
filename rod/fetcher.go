// Package rod provides a browser-based implementation of llmstxt.Fetcher
// for documentation frameworks that render content client-side.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/docsforge/llmstxt"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements llmstxt.Fetcher at compile time.
var _ llmstxt.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome. Safe for
// concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher launches a headless Chrome browser. Close must be called
// when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML as a KindHTML result. Browser-rendered responses are
// always documents, never plain text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*llmstxt.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return &llmstxt.FetchResult{
		URL:        url,
		Kind:       llmstxt.KindHTML,
		Body:       html,
		StatusCode: 200,
		Elapsed:    time.Since(start),
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
