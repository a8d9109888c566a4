package llmstxt_test

import (
	"testing"

	"github.com/docsforge/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestTitleFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "last segment humanized",
			url:  "https://example.com/docs/getting-started/installation",
			want: "Installation",
		},
		{
			name: "hyphens and underscores become spaces",
			url:  "https://example.com/guide/server_side-rendering",
			want: "Server Side Rendering",
		},
		{
			name: "leaf extension dropped",
			url:  "https://example.com/docs/quickstart.html",
			want: "Quickstart",
		},
		{
			name: "generic leaf picks up parent",
			url:  "https://example.com/hooks/index",
			want: "Hooks Index",
		},
		{
			name: "generic leaf without parent uses hostname",
			url:  "https://www.example.com/docs",
			want: "Example.com Docs",
		},
		{
			name: "bare host",
			url:  "https://www.example.com/",
			want: "Example.com Documentation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, llmstxt.TitleFromURL(tt.url))
		})
	}
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	t.Run("ancestor segments humanized", func(t *testing.T) {
		t.Parallel()

		crumbs := llmstxt.Breadcrumbs("https://example.com/docs/advanced-guides/code-splitting")
		assert.Equal(t, []string{"Docs", "Advanced Guides"}, crumbs)
	})

	t.Run("single segment has no breadcrumbs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, llmstxt.Breadcrumbs("https://example.com/docs"))
	})

	t.Run("root has no breadcrumbs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, llmstxt.Breadcrumbs("https://example.com/"))
	})
}
