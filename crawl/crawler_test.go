package crawl_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docsforge/llmstxt"
	"github.com/docsforge/llmstxt/crawl"
	"github.com/docsforge/llmstxt/goquery"
	llmshttp "github.com/docsforge/llmstxt/http"
	"github.com/docsforge/llmstxt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory IndexStore shared across runs of one test.
type memoryStore struct {
	idx *llmstxt.Index
}

func (s *memoryStore) Load(ctx context.Context) (*llmstxt.Index, error) {
	if s.idx == nil {
		return llmstxt.NewIndex(), nil
	}
	return s.idx, nil
}

func (s *memoryStore) Save(ctx context.Context, idx *llmstxt.Index) error {
	s.idx = idx
	return nil
}

func docBody(title string) string {
	return fmt.Sprintf("%s page. %s", title,
		strings.Repeat("This paragraph documents the module behaviour in detail. ", 5))
}

func passthroughChain() *crawl.ExtractorChain {
	return &crawl.ExtractorChain{
		Structured: []llmstxt.ExtractStrategy{
			&mock.ExtractStrategy{
				NameFn: func() string { return "passthrough" },
				ExtractFn: func(html string) (*llmstxt.ExtractResult, error) {
					return &llmstxt.ExtractResult{
						Content:   html,
						WordCount: llmstxt.CountWords(html),
						Method:    "passthrough",
					}, nil
				},
			},
		},
	}
}

func fixedScorer(score float64) *mock.Scorer {
	return &mock.Scorer{
		ScoreFn: func(text string) *llmstxt.QualityAssessment {
			return &llmstxt.QualityAssessment{
				OverallScore: score,
				Level:        llmstxt.ClassifyScore(score),
			}
		},
	}
}

func newTestCrawler(config *llmstxt.Config, store llmstxt.IndexStore, scorer llmstxt.Scorer) (*crawl.Crawler, func()) {
	fetcher := llmshttp.NewFetcher()
	crawler := &crawl.Crawler{
		Config:  config,
		Fetcher: fetcher,
		Links:   goquery.NewLinkExtractor(),
		Chain:   passthroughChain(),
		Scorer:  scorer,
		Store:   store,
		Logger:  slog.New(slog.DiscardHandler),
	}
	return crawler, func() { _ = fetcher.Close() }
}

func TestCrawler_CrawlSite(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s
			<a href="/a">A</a>
			<a href="/missing">Missing</a>
			<a href="/blog/post">Blog</a>
		</body></html>`, docBody("Home"))
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s</body></html>`, docBody("A"))
	})
	mux.HandleFunc("/blog/post", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>excluded</body></html>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := &llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{
			"test": {
				Name:            "Test Site",
				BaseURL:         server.URL + "/",
				MaxDepth:        2,
				MaxPages:        5,
				ExcludePatterns: []string{"/blog/"},
			},
		},
	}

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(config, store, fixedScorer(0.9))
	defer cleanup()

	result, err := crawler.CrawlSite(context.Background(), "test", false)
	require.NoError(t, err)

	assert.Equal(t, "test", result.SiteKey)
	assert.Equal(t, "Test Site", result.SiteName)
	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Pages, 2, "home page and /a")
	assert.Equal(t, 2, result.NewPages)
	assert.Empty(t, result.Errors, "a 404 is a warning, not an error")
	assert.Empty(t, result.Filtered)

	for _, page := range result.Pages {
		require.NotNil(t, page.QualityScore)
		assert.GreaterOrEqual(t, *page.QualityScore, 0.0)
		assert.LessOrEqual(t, *page.QualityScore, 1.0)
		assert.Equal(t, "test", page.SiteKey)
		assert.NotEmpty(t, page.ContentHash)
	}

	require.NotNil(t, result.Stats)
	assert.Equal(t, 2, result.Stats.NewPages)
	assert.Greater(t, result.Stats.RequestCount, 0)
	assert.Zero(t, result.Stats.Errors)

	// The index was persisted with the crawled pages.
	require.NotNil(t, store.idx)
	site := store.idx.Site("test")
	require.NotNil(t, site)
	assert.Len(t, site.Pages, 2)
	assert.Equal(t, "Test Site", site.Name)
}

func TestCrawler_CrawlSite_IncrementalSecondRun(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s<a href="/a">A</a></body></html>`, docBody("Home"))
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s</body></html>`, docBody("A"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := &llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{
			"test": {Name: "Test Site", BaseURL: server.URL + "/"},
		},
	}

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(config, store, fixedScorer(0.9))
	defer cleanup()

	first, err := crawler.CrawlSite(context.Background(), "test", false)
	require.NoError(t, err)
	require.Equal(t, 2, first.NewPages)

	second, err := crawler.CrawlSite(context.Background(), "test", false)
	require.NoError(t, err)
	assert.Zero(t, second.NewPages, "indexed pages are skipped without force")
	assert.Len(t, second.Pages, 2, "existing pages carry into the result")

	forced, err := crawler.CrawlSite(context.Background(), "test", true)
	require.NoError(t, err)
	assert.Equal(t, 2, forced.NewPages, "force re-crawls everything")
}

func TestCrawler_CrawlSite_ForceKeepsTimestampForUnchangedContent(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s</body></html>`, docBody("Home"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := &llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{
			"test": {Name: "Test Site", BaseURL: server.URL + "/"},
		},
	}

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(config, store, fixedScorer(0.9))
	defer cleanup()

	first, err := crawler.CrawlSite(context.Background(), "test", false)
	require.NoError(t, err)
	require.Len(t, first.Pages, 1)

	// Backdate the indexed page so timestamp preservation is observable.
	past := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.idx.Site("test").Pages[0].CrawledAt = past

	forced, err := crawler.CrawlSite(context.Background(), "test", true)
	require.NoError(t, err)
	require.Len(t, forced.Pages, 1)
	assert.True(t, forced.Pages[0].CrawledAt.Equal(past),
		"identical content hash keeps the original crawl timestamp")

	// Pretend the content changed since the last crawl.
	store.idx.Site("test").Pages[0].CrawledAt = past
	store.idx.Site("test").Pages[0].ContentHash = "stale"

	forced, err = crawler.CrawlSite(context.Background(), "test", true)
	require.NoError(t, err)
	require.Len(t, forced.Pages, 1)
	assert.True(t, forced.Pages[0].CrawledAt.After(past),
		"a changed content hash gets a fresh crawl timestamp")
}

func TestCrawler_CrawlSite_QualityFiltering(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s</body></html>`, docBody("Home"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := &llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{
			"test": {
				Name:           "Test Site",
				BaseURL:        server.URL + "/",
				ContentFilters: llmstxt.ContentFilters{MinQualityScore: 0.5},
			},
		},
	}

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(config, store, fixedScorer(0.2))
	defer cleanup()

	result, err := crawler.CrawlSite(context.Background(), "test", false)
	require.NoError(t, err)

	assert.Empty(t, result.Pages)
	require.Len(t, result.Filtered, 1)
	assert.Equal(t, 0.2, result.Filtered[0].Score)
	assert.Empty(t, result.Errors)
}

func TestCrawler_CrawlSite_SingleFile(t *testing.T) {
	t.Parallel()

	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/llms.txt", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "Complete documentation in one plain text file with plenty of words to pass the gate.")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := &llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{
			"flat": {
				Name:       "Flat Site",
				BaseURL:    server.URL + "/llms.txt",
				SingleFile: true,
			},
		},
	}

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(config, store, fixedScorer(0.9))
	defer cleanup()

	result, err := crawler.CrawlSite(context.Background(), "flat", false)
	require.NoError(t, err)

	require.Len(t, result.Pages, 1)
	page := result.Pages[0]
	assert.Equal(t, "plaintext", page.ExtractionMethod)
	assert.Equal(t, 1.0, page.Score(), "plain text is trusted as maximal quality")
	assert.Equal(t, 1, requests, "single-file mode fetches exactly one URL")
}

func TestCrawler_CrawlSite_UnknownSiteIsFatal(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(&llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{},
	}, store, fixedScorer(0.9))
	defer cleanup()

	_, err := crawler.CrawlSite(context.Background(), "nope", false)
	assert.Equal(t, llmstxt.ENOTFOUND, llmstxt.ErrorCode(err))
}

func TestCrawler_CrawlAll(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body>%s</body></html>`, docBody("Home"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := &llmstxt.Config{
		Sites: map[string]*llmstxt.SiteConfig{
			"beta":  {Name: "Beta", BaseURL: server.URL + "/"},
			"alpha": {Name: "Alpha", BaseURL: server.URL + "/"},
		},
	}

	store := &memoryStore{}
	crawler, cleanup := newTestCrawler(config, store, fixedScorer(0.9))
	defer cleanup()

	results, err := crawler.CrawlAll(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "alpha", results[0].SiteKey, "sites crawl in stable key order")
	assert.Equal(t, "beta", results[1].SiteKey)
}
