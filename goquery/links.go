// Package goquery provides CSS-selector-based implementations of link
// extraction, manual content extraction, and documentation-framework
// detection.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docsforge/llmstxt"
)

// Ensure LinkExtractor implements llmstxt.LinkExtractor at compile time.
var _ llmstxt.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects same-origin crawlable links from fetched
// documents.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks collects anchor hrefs, resolving each against the page URL
// so relative paths at depth resolve correctly. Candidates keep only if
// same host as baseURL, fragment-free after resolution, and not matching
// any exclude pattern. Duplicates are collapsed, first occurrence wins.
func (e *LinkExtractor) ExtractLinks(html, pageURL, baseURL string, exclude []*regexp.Regexp) ([]string, error) {
	page, err := url.Parse(pageURL)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid page URL: %v", err)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveAgainstPage(page, href)
		if resolved == "" {
			return
		}
		if !sameHost(base, resolved) {
			return
		}
		for _, re := range exclude {
			if re.MatchString(resolved) {
				return
			}
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolveAgainstPage resolves a relative href against the current page
// URL. Fragments are stripped; fragment-only (self-referential) links
// resolve to empty.
func resolveAgainstPage(page *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := page.ResolveReference(ref)
	resolved.Fragment = ""

	pageNoFragment := *page
	pageNoFragment.Fragment = ""
	if resolved.String() == pageNoFragment.String() {
		return ""
	}
	return resolved.String()
}

// sameHost checks the resolved URL against the base URL's host.
// Exact match only; subdomains count as different hosts.
func sameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink reports hrefs with schemes that cannot be crawled.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
