package crawl

import (
	"context"

	"github.com/docsforge/llmstxt"
)

// Ensure CapabilityFetcher implements llmstxt.Fetcher at compile time.
var _ llmstxt.Fetcher = (*CapabilityFetcher)(nil)

// CapabilityFetcher routes between a plain HTTP fetcher and a browser
// fetcher by runtime capability detection: every URL is fetched over HTTP
// first, and the result is re-fetched through the browser only when the
// detected framework renders content client-side. With no browser
// configured, the HTTP result is used as-is.
type CapabilityFetcher struct {
	HTTP     llmstxt.Fetcher
	Browser  llmstxt.Fetcher
	Detector llmstxt.FrameworkDetector

	// Limiter throttles the browser re-fetch. The HTTP fetch is already
	// rate-limited by the caller; the upgrade is a second outbound request
	// and must wait for its own token.
	Limiter llmstxt.RateLimiter
}

// Fetch retrieves a URL, upgrading to a browser fetch when needed.
func (f *CapabilityFetcher) Fetch(ctx context.Context, url string) (*llmstxt.FetchResult, error) {
	result, err := f.HTTP.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if f.Browser == nil || f.Detector == nil || result.Kind != llmstxt.KindHTML {
		return result, nil
	}

	framework := f.Detector.Detect(result.Body)
	if !f.Detector.RequiresJS(framework) {
		return result, nil
	}

	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	rendered, err := f.Browser.Fetch(ctx, url)
	if err != nil {
		// Fall back to the static HTML rather than failing the URL.
		return result, nil
	}
	return rendered, nil
}

// Close releases both underlying fetchers.
func (f *CapabilityFetcher) Close() error {
	err := f.HTTP.Close()
	if f.Browser != nil {
		if berr := f.Browser.Close(); err == nil {
			err = berr
		}
	}
	return err
}
