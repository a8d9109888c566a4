// Package mock provides hand-written mocks of the domain interfaces for
// use in tests. Each mock delegates to settable function fields.
package mock

import (
	"context"
	"regexp"

	"github.com/docsforge/llmstxt"
)

var _ llmstxt.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of llmstxt.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*llmstxt.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*llmstxt.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ llmstxt.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of llmstxt.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, pageURL, baseURL string, exclude []*regexp.Regexp) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, pageURL, baseURL string, exclude []*regexp.Regexp) ([]string, error) {
	return e.ExtractLinksFn(html, pageURL, baseURL, exclude)
}

var _ llmstxt.ExtractStrategy = (*ExtractStrategy)(nil)

// ExtractStrategy is a mock implementation of llmstxt.ExtractStrategy.
type ExtractStrategy struct {
	NameFn    func() string
	ExtractFn func(html string) (*llmstxt.ExtractResult, error)
}

func (s *ExtractStrategy) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *ExtractStrategy) Extract(html string) (*llmstxt.ExtractResult, error) {
	return s.ExtractFn(html)
}

var _ llmstxt.ManualExtractor = (*ManualExtractor)(nil)

// ManualExtractor is a mock implementation of llmstxt.ManualExtractor.
type ManualExtractor struct {
	ExtractContentFn func(html string, selectors []string) (*llmstxt.ExtractResult, error)
	ExtractTitleFn   func(html string, selectors []string) (string, bool)
}

func (e *ManualExtractor) ExtractContent(html string, selectors []string) (*llmstxt.ExtractResult, error) {
	return e.ExtractContentFn(html, selectors)
}

func (e *ManualExtractor) ExtractTitle(html string, selectors []string) (string, bool) {
	if e.ExtractTitleFn == nil {
		return "", false
	}
	return e.ExtractTitleFn(html, selectors)
}

var _ llmstxt.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of llmstxt.Scorer.
type Scorer struct {
	ScoreFn func(text string) *llmstxt.QualityAssessment
}

func (s *Scorer) Score(text string) *llmstxt.QualityAssessment {
	return s.ScoreFn(text)
}

var _ llmstxt.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of llmstxt.IndexStore.
type IndexStore struct {
	LoadFn func(ctx context.Context) (*llmstxt.Index, error)
	SaveFn func(ctx context.Context, idx *llmstxt.Index) error
}

func (s *IndexStore) Load(ctx context.Context) (*llmstxt.Index, error) {
	return s.LoadFn(ctx)
}

func (s *IndexStore) Save(ctx context.Context, idx *llmstxt.Index) error {
	return s.SaveFn(ctx, idx)
}

var _ llmstxt.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of llmstxt.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}

var _ llmstxt.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of llmstxt.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ llmstxt.Converter = (*Converter)(nil)

// Converter is a mock implementation of llmstxt.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ llmstxt.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of llmstxt.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn     func(html string) llmstxt.Framework
	RequiresJSFn func(framework llmstxt.Framework) bool
}

func (d *FrameworkDetector) Detect(html string) llmstxt.Framework {
	return d.DetectFn(html)
}

func (d *FrameworkDetector) RequiresJS(framework llmstxt.Framework) bool {
	if d.RequiresJSFn == nil {
		return false
	}
	return d.RequiresJSFn(framework)
}
