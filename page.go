package llmstxt

import (
	"strings"
	"time"
)

// Page represents one successfully extracted, quality-accepted
// documentation page. A Page is created once and never mutated; a
// force-reindex replaces a site's pages wholesale.
type Page struct {
	URL              string    `json:"url"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	WordCount        int       `json:"wordCount"`
	QualityScore     *float64  `json:"qualityScore,omitempty"`
	ExtractionMethod string    `json:"extractionMethod"`
	ContentHash      string    `json:"contentHash,omitempty"`
	LastModified     time.Time `json:"lastModified,omitempty"`
	Breadcrumbs      []string  `json:"breadcrumbs,omitempty"`
	SiteKey          string    `json:"siteKey"`
	SiteName         string    `json:"siteName"`
	Depth            int       `json:"depth"`
	CrawledAt        time.Time `json:"crawledAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.SiteKey == "" {
		return Errorf(EINVALID, "page site key required")
	}
	return nil
}

// Score returns the quality score, or 0 when none was computed.
func (p *Page) Score() float64 {
	if p.QualityScore == nil {
		return 0
	}
	return *p.QualityScore
}

// CrawlError records a recoverable per-URL failure. Errors never abort a
// run; they are collected and surfaced in the end-of-run summary.
type CrawlError struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// FilteredPage records a page that extracted successfully but scored below
// the acceptance threshold. Distinct from a hard fetch or extraction error
// so it can be disclosed in the assembled corpus.
type FilteredPage struct {
	URL   string  `json:"url"`
	Score float64 `json:"score"`
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
