package llmstxt

import (
	"context"
	"time"
)

// ContentKind classifies a fetched response body.
type ContentKind int

// Response classifications. Plain-text responses skip HTML cleanup and are
// treated as maximal quality downstream.
const (
	KindHTML ContentKind = iota
	KindPlainText
)

// FetchResult holds one fetched, classified response.
type FetchResult struct {
	URL          string
	Kind         ContentKind
	Body         string
	StatusCode   int
	LastModified time.Time
	Elapsed      time.Duration
}

// Fetcher retrieves a single URL. Implementations perform one bounded GET;
// a missing page surfaces as an ENOTFOUND error and any other non-2xx
// status as EUNAVAILABLE, both recoverable for the caller.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any underlying resources (browser processes,
	// connection pools). Must be called when the Fetcher is no longer
	// needed.
	Close() error
}

// RateLimiter throttles outbound fetches. Wait never rejects, it only
// delays; the sole error condition is context cancellation.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// SitemapService discovers URLs from a site's sitemap.xml, used to
// supplement seed-page link discovery when bootstrapping the frontier.
type SitemapService interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
