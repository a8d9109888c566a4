package crawl

import (
	"context"

	"github.com/docsforge/llmstxt"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one URL in a batch fetch. Exactly one of
// Result and Err is set.
type BatchResult struct {
	URL    string
	Result *llmstxt.FetchResult
	Err    error
}

// BatchFetcher fetches a URL list with a bounded concurrency window: URLs
// are chunked into groups of MaxConcurrency, and all members of a chunk
// are dispatched together and awaited before the next chunk starts. This
// bounds in-flight request count; the RateLimiter independently bounds
// request rate. No retries: a failed URL is recorded and abandoned.
type BatchFetcher struct {
	Fetcher        llmstxt.Fetcher
	Limiter        llmstxt.RateLimiter
	MaxConcurrency int
}

// FetchAll fetches every URL and returns per-URL outcomes in input order.
// A context cancellation stops dispatching further chunks; outcomes for
// undispatched URLs carry the cancellation error.
func (b *BatchFetcher) FetchAll(ctx context.Context, urls []string) []BatchResult {
	concurrency := b.MaxConcurrency
	if concurrency <= 0 {
		concurrency = llmstxt.DefaultMaxConcurrency
	}

	outcomes := make([]BatchResult, len(urls))
	for i, u := range urls {
		outcomes[i].URL = u
	}

	for start := 0; start < len(urls); start += concurrency {
		if err := ctx.Err(); err != nil {
			for i := start; i < len(urls); i++ {
				outcomes[i].Err = err
			}
			break
		}
		end := start + concurrency
		if end > len(urls) {
			end = len(urls)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				if b.Limiter != nil {
					if err := b.Limiter.Wait(gctx); err != nil {
						outcomes[i].Err = err
						return nil
					}
				}
				result, err := b.Fetcher.Fetch(gctx, urls[i])
				if err != nil {
					outcomes[i].Err = err
					return nil
				}
				outcomes[i].Result = result
				return nil
			})
		}
		_ = g.Wait()
	}

	return outcomes
}
