package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/docsforge/llmstxt"
)

// Ensure SitemapService implements llmstxt.SitemapService at compile time.
var _ llmstxt.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from sitemap.xml to supplement seed-page
// link discovery during frontier bootstrap. Missing sitemaps are not an
// error; discovery degrades to an empty result.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds URLs from a site's sitemap. It checks robots.txt for
// Sitemap directives first, then falls back to /sitemap.xml. Sitemap
// indexes are resolved recursively. Only URLs under baseURL's host are
// returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid base URL: %v", err)
	}

	root := *base
	root.Path = ""

	sitemapURLs := s.findSitemapURLs(ctx, &root)
	if len(sitemapURLs) == 0 {
		return nil, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string
	for _, sitemapURL := range sitemapURLs {
		discovered, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, u := range discovered {
			parsed, err := url.Parse(u)
			if err != nil || parsed.Host != base.Host {
				continue
			}
			if !seenURLs[u] {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}
	return urls, nil
}

// findSitemapURLs reads Sitemap directives from robots.txt, falling back
// to the conventional /sitemap.xml location.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) []string {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.sitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if s.exists(ctx, sitemapURL.String()) {
		return []string{sitemapURL.String()}
	}
	return nil
}

func (s *SitemapService) sitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// processSitemap parses one sitemap document, recursing into sitemap
// indexes. The seen map prevents cycles.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "parsing sitemap XML: %v", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, sitemap := range root.SelectElements("sitemap") {
			loc := sitemap.SelectElement("loc")
			if loc == nil {
				continue
			}
			child := strings.TrimSpace(loc.Text())
			if child == "" {
				continue
			}
			childURLs, err := s.processSitemap(ctx, child, seen)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				continue
			}
			urls = append(urls, childURLs...)
		}
		return urls, nil
	}

	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, llmstxt.Errorf(llmstxt.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, targetURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
