package llmstxt

import "regexp"

// LinkExtractor pulls same-origin, policy-valid links out of a fetched
// document.
type LinkExtractor interface {
	// ExtractLinks collects anchor hrefs from html, resolving each
	// against pageURL (not baseURL) so relative paths behave at depth.
	// A candidate is kept only if it shares baseURL's host, carries no
	// fragment, and matches none of the exclude patterns. Duplicates
	// are collapsed.
	ExtractLinks(html, pageURL, baseURL string, exclude []*regexp.Regexp) ([]string, error)
}
