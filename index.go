package llmstxt

import (
	"context"
	"time"
)

// Index is the persisted record of previously crawled pages across all
// sites. It is read once at the start of a run and rewritten atomically at
// the end.
type Index struct {
	Generated time.Time             `json:"generated"`
	Sites     map[string]*SiteIndex `json:"sites"`
}

// SiteIndex holds one site's crawled pages and run telemetry.
// Invariant: URLs within Pages are unique.
type SiteIndex struct {
	Name        string     `json:"name"`
	BaseURL     string     `json:"baseUrl"`
	Pages       []*Page    `json:"pages"`
	LastCrawled time.Time  `json:"lastCrawled"`
	Stats       *SiteStats `json:"stats,omitempty"`
}

// SiteStats is aggregate telemetry for the most recent run against a site.
type SiteStats struct {
	RunID           string  `json:"runId"`
	DurationSeconds float64 `json:"durationSeconds"`
	RequestCount    int     `json:"requestCount"`
	AvgResponseMS   float64 `json:"avgResponseMs"`
	PagesPerSecond  float64 `json:"pagesPerSecond"`
	NewPages        int     `json:"newPages"`
	Errors          int     `json:"errors"`
	QualityFiltered int     `json:"qualityFiltered"`
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{Sites: make(map[string]*SiteIndex)}
}

// Site returns the index entry for a site key, or nil if absent.
func (idx *Index) Site(key string) *SiteIndex {
	if idx == nil || idx.Sites == nil {
		return nil
	}
	return idx.Sites[key]
}

// SetSite replaces a site's entry and stamps the index generation time.
func (idx *Index) SetSite(key string, site *SiteIndex) {
	if idx.Sites == nil {
		idx.Sites = make(map[string]*SiteIndex)
	}
	idx.Sites[key] = site
	idx.Generated = time.Now().UTC()
}

// URLSet returns the set of URLs already indexed for a site. The result
// seeds the crawler's seen set so indexed pages are never re-enqueued in
// incremental mode.
func (idx *Index) URLSet(key string) map[string]bool {
	urls := make(map[string]bool)
	site := idx.Site(key)
	if site == nil {
		return urls
	}
	for _, page := range site.Pages {
		urls[page.URL] = true
	}
	return urls
}

// AddPage appends a page to the site entry, enforcing URL uniqueness.
// Returns false if the URL is already present.
func (s *SiteIndex) AddPage(page *Page) bool {
	for _, existing := range s.Pages {
		if existing.URL == page.URL {
			return false
		}
	}
	s.Pages = append(s.Pages, page)
	return true
}

// IndexStore loads and persists the crawl index.
type IndexStore interface {
	// Load reads the index from storage. A missing index is not an
	// error; implementations return an empty index.
	Load(ctx context.Context) (*Index, error)

	// Save rewrites the index atomically.
	Save(ctx context.Context, idx *Index) error
}
