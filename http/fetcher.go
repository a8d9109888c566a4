// Package http provides the HTTP implementation of llmstxt.Fetcher: one
// bounded GET per call with response classification, plus sitemap-based
// URL discovery.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docsforge/llmstxt"
)

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 20 * time.Second

// defaultUserAgent identifies the crawler to remote sites.
const defaultUserAgent = "llmstxt/1.0 (+https://github.com/docsforge/llmstxt)"

// acceptHeader prefers HTML but welcomes plain text.
const acceptHeader = "text/html,application/xhtml+xml;q=0.9,text/plain;q=0.8,*/*;q=0.5"

// Ensure Fetcher implements llmstxt.Fetcher at compile time.
var _ llmstxt.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves and classifies pages over plain HTTP. It does not
// execute JavaScript; client-rendered sites need the browser fetcher.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch performs one GET and classifies the response. A 404 returns an
// ENOTFOUND error, any other non-2xx returns EUNAVAILABLE; both are
// recoverable for the caller. Plain-text responses (content type or .txt
// path) come back as KindPlainText and skip HTML cleanup downstream.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*llmstxt.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	if resp.StatusCode == http.StatusNotFound {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "HTTP 404 for %s", rawURL)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, llmstxt.Errorf(llmstxt.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := &llmstxt.FetchResult{
		URL:        rawURL,
		Kind:       classify(rawURL, resp.Header.Get("Content-Type")),
		Body:       string(body),
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
	}
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			result.LastModified = t
		}
	}
	return result, nil
}

// Close releases resources. A no-op for plain HTTP.
func (f *Fetcher) Close() error {
	return nil
}

// classify decides between HTML and plain text from the content type,
// falling back to a .txt path suffix when the header is absent or vague.
func classify(rawURL, contentType string) llmstxt.ContentKind {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if mediaType == "text/plain" {
			return llmstxt.KindPlainText
		}
		if mediaType == "text/html" || mediaType == "application/xhtml+xml" {
			return llmstxt.KindHTML
		}
	}
	if u, err := url.Parse(rawURL); err == nil && strings.HasSuffix(u.Path, ".txt") {
		return llmstxt.KindPlainText
	}
	return llmstxt.KindHTML
}
