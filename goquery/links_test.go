package goquery_test

import (
	"regexp"
	"testing"

	"github.com/docsforge/llmstxt"
	"github.com/docsforge/llmstxt/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewLinkExtractor()

	t.Run("resolves relative links against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="advanced">Advanced</a><a href="/reference">Reference</a>`
		links, err := extractor.ExtractLinks(html, "https://example.com/docs/intro", "https://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/advanced",
			"https://example.com/reference",
		}, links)
	})

	t.Run("drops cross-host links including subdomains", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/docs">Docs</a>` +
			`<a href="https://other.com/page">Other</a>` +
			`<a href="https://api.example.com/ref">Subdomain</a>`
		links, err := extractor.ExtractLinks(html, "https://example.com/", "https://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, links)
	})

	t.Run("strips fragments and drops self links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="#section">Jump</a><a href="/docs#install">Install</a>`
		links, err := extractor.ExtractLinks(html, "https://example.com/page", "https://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, links)
	})

	t.Run("applies exclude patterns", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/docs">Docs</a><a href="/blog/post">Blog</a>`
		exclude := []*regexp.Regexp{regexp.MustCompile(`/blog/`)}
		links, err := extractor.ExtractLinks(html, "https://example.com/", "https://example.com", exclude)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, links)
	})

	t.Run("skips non-http schemes", func(t *testing.T) {
		t.Parallel()

		html := `<a href="mailto:x@example.com">Mail</a>` +
			`<a href="javascript:void(0)">JS</a>` +
			`<a href="tel:+1234">Call</a>` +
			`<a href="/docs">Docs</a>`
		links, err := extractor.ExtractLinks(html, "https://example.com/", "https://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, links)
	})

	t.Run("deduplicates first occurrence wins", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/docs">One</a><a href="/docs">Two</a><a href="/docs#frag">Three</a>`
		links, err := extractor.ExtractLinks(html, "https://example.com/", "https://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, links)
	})

	t.Run("invalid page URL is EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractLinks("<a href='/x'>x</a>", "://bad", "https://example.com", nil)
		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})
}
