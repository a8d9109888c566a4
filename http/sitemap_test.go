package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	llmshttp "github.com/docsforge/llmstxt/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sitemapXML(urls ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><urlset>`
	for _, u := range urls {
		body += "<url><loc>" + u + "</loc></url>"
	}
	return body + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("uses robots.txt sitemap directive", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/custom-sitemap.xml\n", server.URL)
		})
		mux.HandleFunc("/custom-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sitemapXML(server.URL+"/docs/a", server.URL+"/docs/b"))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		svc := llmshttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/a", server.URL + "/docs/b"}, urls)
	})

	t.Run("falls back to conventional sitemap.xml", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sitemapXML(server.URL+"/docs/a"))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		svc := llmshttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/a"}, urls)
	})

	t.Run("recurses into sitemap indexes", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex><sitemap><loc>%s/child.xml</loc></sitemap></sitemapindex>`, server.URL)
		})
		mux.HandleFunc("/child.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sitemapXML(server.URL+"/docs/nested"))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		svc := llmshttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/nested"}, urls)
	})

	t.Run("filters cross-host URLs", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sitemapXML(server.URL+"/docs/a", "https://other.example.com/b"))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		svc := llmshttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/a"}, urls)
	})

	t.Run("missing sitemap yields empty result without error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		svc := llmshttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
