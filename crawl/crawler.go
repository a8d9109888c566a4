// Package crawl orchestrates the crawl-and-curate pipeline: rate-limited
// page discovery, the content-extraction fallback chain, quality scoring,
// and the incremental crawl index.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/docsforge/llmstxt"
	"github.com/google/uuid"
)

// Crawler runs bounded breadth-first crawls of configured sites.
type Crawler struct {
	Config  *llmstxt.Config
	Fetcher llmstxt.Fetcher
	Links   llmstxt.LinkExtractor
	Chain   *ExtractorChain
	Scorer  llmstxt.Scorer
	Store   llmstxt.IndexStore

	// Sitemaps, when set, supplements entry-point discovery with
	// sitemap.xml URLs.
	Sitemaps llmstxt.SitemapService

	// Limiter throttles every outbound fetch of the run.
	Limiter llmstxt.RateLimiter

	Logger *slog.Logger
}

// RunResult is the outcome of crawling one site.
type RunResult struct {
	SiteKey  string
	SiteName string
	RunID    string

	// Pages is the site's full page set after the run: pre-existing
	// indexed pages plus the pages added by this run.
	Pages []*llmstxt.Page

	NewPages int
	Filtered []*llmstxt.FilteredPage
	Errors   []*llmstxt.CrawlError
	Stats    *llmstxt.SiteStats
}

// CrawlSite crawls one configured site and persists the merged index.
// Only an unknown site key, invalid configuration, or a failed index
// write abort the run; per-URL failures land in the result's Errors.
func (c *Crawler) CrawlSite(ctx context.Context, siteKey string, force bool) (*RunResult, error) {
	site, err := c.Config.Site(siteKey)
	if err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	site.ApplyDefaults()

	exclude, err := site.ExcludeRegexps()
	if err != nil {
		return nil, err
	}

	idx, err := c.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	run := &crawlRun{
		crawler:  c,
		site:     site,
		siteKey:  siteKey,
		force:    force,
		exclude:  exclude,
		frontier: NewFrontier(),
		visited:  make(map[string]bool),
		indexed:  make(map[string]bool),
		pageSet:  make(map[string]bool),
		prior:    make(map[string]*llmstxt.Page),
		cache:    make(map[string]*llmstxt.FetchResult),
		logger:   c.logger(),
		started:  time.Now(),
		runID:    uuid.NewString(),
	}

	if existing := idx.Site(siteKey); existing != nil {
		for _, p := range existing.Pages {
			run.prior[p.URL] = p
		}
		if !force {
			run.pages = append(run.pages, existing.Pages...)
		}
	}
	if !force {
		run.indexed = idx.URLSet(siteKey)
		for u := range run.indexed {
			run.frontier.MarkSeen(u)
			run.pageSet[u] = true
		}
	}

	if site.SingleFile {
		// Single-file sites skip discovery entirely: the configured URL
		// is the whole crawl.
		run.frontier.Push(site.BaseURL, 0)
	} else {
		run.discoverEntryPoints(ctx)
	}

	run.drain(ctx)

	result := run.finish()

	siteIdx := &llmstxt.SiteIndex{
		Name:        site.Name,
		BaseURL:     site.BaseURL,
		Pages:       result.Pages,
		LastCrawled: time.Now().UTC(),
		Stats:       result.Stats,
	}
	idx.SetSite(siteKey, siteIdx)
	if err := c.Store.Save(ctx, idx); err != nil {
		return nil, err
	}

	run.logger.Info("crawl complete",
		"site", siteKey,
		"run", result.RunID,
		"pages", len(result.Pages),
		"new", result.NewPages,
		"filtered", len(result.Filtered),
		"errors", len(result.Errors),
	)
	return result, nil
}

// CrawlAll crawls every configured site in stable key order.
func (c *Crawler) CrawlAll(ctx context.Context, force bool) ([]*RunResult, error) {
	keys := make([]string, 0, len(c.Config.Sites))
	for key := range c.Config.Sites {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]*RunResult, 0, len(keys))
	for _, key := range keys {
		result, err := c.CrawlSite(ctx, key, force)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// crawlRun holds the per-run mutable state: frontier, seen/visited sets,
// accumulating pages and telemetry. State is owned by the single run.
type crawlRun struct {
	crawler *Crawler
	site    *llmstxt.SiteConfig
	siteKey string
	force   bool
	exclude []*regexp.Regexp

	frontier *Frontier
	visited  map[string]bool
	indexed  map[string]bool
	pageSet  map[string]bool
	prior    map[string]*llmstxt.Page
	cache    map[string]*llmstxt.FetchResult

	pages    []*llmstxt.Page
	newPages int
	filtered []*llmstxt.FilteredPage
	errors   []*llmstxt.CrawlError

	requestCount int
	totalElapsed time.Duration

	logger  *slog.Logger
	started time.Time
	runID   string
}

// fetch performs one rate-limited, timed GET, consulting the discovery
// cache first so seed pages are not fetched twice.
func (r *crawlRun) fetch(ctx context.Context, rawURL string) (*llmstxt.FetchResult, error) {
	if cached, ok := r.cache[rawURL]; ok {
		delete(r.cache, rawURL)
		return cached, nil
	}

	if r.crawler.Limiter != nil {
		if err := r.crawler.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	result, err := r.crawler.Fetcher.Fetch(ctx, rawURL)
	r.requestCount++
	if result != nil {
		r.totalElapsed += result.Elapsed
	}
	return result, err
}

// recordFetchError routes a fetch failure: 404s are a diagnostic warning
// signal, everything else joins the run's error list.
func (r *crawlRun) recordFetchError(rawURL string, err error) {
	if llmstxt.ErrorCode(err) == llmstxt.ENOTFOUND {
		r.logger.Warn("page not found", "site", r.siteKey, "url", rawURL)
		return
	}
	r.errors = append(r.errors, &llmstxt.CrawlError{URL: rawURL, Message: err.Error()})
}

// discoverEntryPoints bootstraps the frontier: configured seeds always
// come first, then links discovered on the seed pages, then sitemap URLs,
// capped at the site's entry-point limit. The cap is policy, not law; it
// trades coverage for boundedness on link-dense sites.
func (r *crawlRun) discoverEntryPoints(ctx context.Context) {
	seeds := make([]string, 0, len(r.site.SeedURLs)+1)
	if len(r.site.SeedURLs) == 0 {
		seeds = append(seeds, r.site.BaseURL)
	}
	for _, seed := range r.site.SeedURLs {
		if resolved := resolveSeed(r.site.BaseURL, seed); resolved != "" {
			seeds = append(seeds, resolved)
		}
	}

	entries := make([]string, 0, r.site.MaxEntryPoints)
	seen := make(map[string]bool)
	add := func(candidate string) {
		if len(entries) >= r.site.MaxEntryPoints || seen[candidate] {
			return
		}
		seen[candidate] = true
		entries = append(entries, candidate)
	}

	for _, seed := range seeds {
		add(seed)
	}

	// Sibling discovery: links found on seed pages become entry points
	// too. Seeds are fetched as one bounded-concurrency batch, and the
	// results are cached so the drain loop does not fetch them twice.
	batch := &BatchFetcher{
		Fetcher:        r.crawler.Fetcher,
		Limiter:        r.crawler.Limiter,
		MaxConcurrency: r.site.MaxConcurrency,
	}
	for _, outcome := range batch.FetchAll(ctx, seeds) {
		r.requestCount++
		if outcome.Err != nil {
			r.recordFetchError(outcome.URL, outcome.Err)
			continue
		}
		r.totalElapsed += outcome.Result.Elapsed
		r.cache[outcome.URL] = outcome.Result
		if outcome.Result.Kind != llmstxt.KindHTML {
			continue
		}
		links, err := r.crawler.Links.ExtractLinks(outcome.Result.Body, outcome.URL, r.site.BaseURL, r.exclude)
		if err != nil {
			continue
		}
		for _, link := range links {
			add(link)
		}
	}

	if r.crawler.Sitemaps != nil {
		urls, err := r.crawler.Sitemaps.DiscoverURLs(ctx, r.site.BaseURL)
		if err == nil {
		sitemap:
			for _, u := range urls {
				for _, re := range r.exclude {
					if re.MatchString(u) {
						continue sitemap
					}
				}
				add(u)
			}
		}
	}

	for _, entry := range entries {
		r.frontier.Push(entry, 0)
	}
}

// drain processes the frontier FIFO until the page budget is exhausted or
// the frontier empties.
func (r *crawlRun) drain(ctx context.Context) {
	for len(r.pages) < r.site.MaxPages {
		entry, ok := r.frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if r.visited[entry.URL] {
			continue
		}
		r.visited[entry.URL] = true
		if entry.Depth > r.site.MaxDepth {
			continue
		}
		if !r.force && r.indexed[entry.URL] {
			continue
		}

		result, err := r.fetch(ctx, entry.URL)
		if err != nil {
			r.recordFetchError(entry.URL, err)
			continue
		}

		r.processPage(entry, result)

		if entry.Depth < r.site.MaxDepth && result.Kind == llmstxt.KindHTML {
			links, err := r.crawler.Links.ExtractLinks(result.Body, entry.URL, r.site.BaseURL, r.exclude)
			if err == nil {
				for _, link := range links {
					r.frontier.Push(link, entry.Depth+1)
				}
			}
		}
	}
}

// processPage runs extraction and scoring for one fetched URL and appends
// the resulting page record, the quality-filtered entry, or nothing (for
// silent extraction rejections).
func (r *crawlRun) processPage(entry Entry, result *llmstxt.FetchResult) {
	now := time.Now().UTC()

	// Plain text is trusted as-is: no HTML cleanup, maximal quality.
	if result.Kind == llmstxt.KindPlainText {
		score := 1.0
		r.appendPage(&llmstxt.Page{
			URL:              entry.URL,
			Title:            llmstxt.TitleFromURL(entry.URL),
			Content:          result.Body,
			WordCount:        llmstxt.CountWords(result.Body),
			QualityScore:     &score,
			ExtractionMethod: "plaintext",
			ContentHash:      contentHash(result.Body),
			LastModified:     result.LastModified,
			Breadcrumbs:      llmstxt.Breadcrumbs(entry.URL),
			SiteKey:          r.siteKey,
			SiteName:         r.site.Name,
			Depth:            entry.Depth,
			CrawledAt:        now,
		})
		return
	}

	extracted, err := r.crawler.Chain.Extract(result.Body, entry.URL, r.site)
	if err != nil {
		r.errors = append(r.errors, &llmstxt.CrawlError{URL: entry.URL, Message: err.Error()})
		return
	}
	if extracted == nil {
		// Filtering outcome (too short or a soft-404), not an error.
		return
	}

	page := &llmstxt.Page{
		URL:              entry.URL,
		Title:            extracted.Title,
		Content:          extracted.Content,
		WordCount:        extracted.WordCount,
		ExtractionMethod: extracted.Method,
		ContentHash:      contentHash(extracted.Content),
		LastModified:     result.LastModified,
		Breadcrumbs:      llmstxt.Breadcrumbs(entry.URL),
		SiteKey:          r.siteKey,
		SiteName:         r.site.Name,
		Depth:            entry.Depth,
		CrawledAt:        now,
	}

	if r.crawler.Scorer != nil {
		assessment := r.crawler.Scorer.Score(extracted.Content)
		page.QualityScore = &assessment.OverallScore
		threshold := r.site.ContentFilters.MinQualityScore
		if threshold > 0 && assessment.OverallScore < threshold {
			r.filtered = append(r.filtered, &llmstxt.FilteredPage{
				URL:   entry.URL,
				Score: assessment.OverallScore,
			})
			return
		}
	}

	r.appendPage(page)
}

// appendPage adds a page, enforcing per-site URL uniqueness. CrawledAt
// records when the content version was first seen: a re-crawl whose hash
// matches the indexed page keeps the earlier timestamp.
func (r *crawlRun) appendPage(page *llmstxt.Page) {
	if r.pageSet[page.URL] {
		return
	}
	if prev, ok := r.prior[page.URL]; ok && prev.ContentHash != "" &&
		prev.ContentHash == page.ContentHash && !prev.CrawledAt.IsZero() {
		page.CrawledAt = prev.CrawledAt
	}
	r.pageSet[page.URL] = true
	r.pages = append(r.pages, page)
	r.newPages++
}

// finish computes run telemetry and packages the result.
func (r *crawlRun) finish() *RunResult {
	duration := time.Since(r.started)

	stats := &llmstxt.SiteStats{
		RunID:           r.runID,
		DurationSeconds: duration.Seconds(),
		RequestCount:    r.requestCount,
		NewPages:        r.newPages,
		Errors:          len(r.errors),
		QualityFiltered: len(r.filtered),
	}
	if r.requestCount > 0 {
		stats.AvgResponseMS = float64(r.totalElapsed.Milliseconds()) / float64(r.requestCount)
	}
	if duration > 0 {
		stats.PagesPerSecond = float64(r.newPages) / duration.Seconds()
	}

	return &RunResult{
		SiteKey:  r.siteKey,
		SiteName: r.site.Name,
		RunID:    r.runID,
		Pages:    r.pages,
		NewPages: r.newPages,
		Filtered: r.filtered,
		Errors:   r.errors,
		Stats:    stats,
	}
}

// resolveSeed resolves a configured seed (absolute URL or path) against
// the site base URL.
func resolveSeed(baseURL, seed string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(seed)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// contentHash fingerprints page content for change detection across runs.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
