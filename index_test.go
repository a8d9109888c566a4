package llmstxt_test

import (
	"testing"

	"github.com/docsforge/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestSiteIndex_AddPage_EnforcesURLUniqueness(t *testing.T) {
	t.Parallel()

	site := &llmstxt.SiteIndex{Name: "React"}

	assert.True(t, site.AddPage(&llmstxt.Page{URL: "https://react.dev/learn"}))
	assert.False(t, site.AddPage(&llmstxt.Page{URL: "https://react.dev/learn"}))
	assert.True(t, site.AddPage(&llmstxt.Page{URL: "https://react.dev/reference"}))
	assert.Len(t, site.Pages, 2)
}

func TestIndex_SetSite_StampsGeneration(t *testing.T) {
	t.Parallel()

	idx := llmstxt.NewIndex()
	assert.True(t, idx.Generated.IsZero())

	idx.SetSite("react", &llmstxt.SiteIndex{Name: "React"})

	assert.False(t, idx.Generated.IsZero())
	assert.Equal(t, "React", idx.Site("react").Name)
}

func TestIndex_URLSet(t *testing.T) {
	t.Parallel()

	idx := llmstxt.NewIndex()
	idx.SetSite("react", &llmstxt.SiteIndex{
		Pages: []*llmstxt.Page{
			{URL: "https://react.dev/learn"},
			{URL: "https://react.dev/reference"},
		},
	})

	urls := idx.URLSet("react")
	assert.Len(t, urls, 2)
	assert.True(t, urls["https://react.dev/learn"])

	assert.Empty(t, idx.URLSet("missing"))
}

func TestPage_Score(t *testing.T) {
	t.Parallel()

	page := &llmstxt.Page{}
	assert.Zero(t, page.Score())

	score := 0.7
	page.QualityScore = &score
	assert.Equal(t, 0.7, page.Score())
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	page := &llmstxt.Page{URL: "https://react.dev/learn", SiteKey: "react"}
	assert.NoError(t, page.Validate())

	assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode((&llmstxt.Page{SiteKey: "react"}).Validate()))
	assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode((&llmstxt.Page{URL: "https://react.dev"}).Validate()))
}
