// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsforge/llmstxt"
)

// Ensure LoggingFetcher implements llmstxt.Fetcher at compile time.
var _ llmstxt.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured request logging.
type LoggingFetcher struct {
	next   llmstxt.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a LoggingFetcher.
func NewLoggingFetcher(next llmstxt.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging outcome and timing.
// Missing pages log as warnings; other failures as errors.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*llmstxt.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	elapsed := time.Since(begin)

	if err != nil {
		if llmstxt.ErrorCode(err) == llmstxt.ENOTFOUND {
			f.logger.Warn("fetch 404", "url", url, "duration", elapsed)
		} else {
			f.logger.Error("fetch failed", "url", url, "duration", elapsed, "err", err)
		}
		return nil, err
	}

	f.logger.Debug("fetched",
		"url", url,
		"status", result.StatusCode,
		"bytes", len(result.Body),
		"plaintext", result.Kind == llmstxt.KindPlainText,
		"duration", elapsed,
	)
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
