package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsforge/llmstxt"
	"github.com/docsforge/llmstxt/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexStore_LoadMissingFileYieldsEmptyIndex(t *testing.T) {
	t.Parallel()

	store := fs.NewIndexStore(filepath.Join(t.TempDir(), "missing.json"))

	idx, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, idx.Sites)
}

func TestIndexStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	store := fs.NewIndexStore(path)

	score := 0.8
	idx := llmstxt.NewIndex()
	idx.SetSite("react", &llmstxt.SiteIndex{
		Name:    "React",
		BaseURL: "https://react.dev",
		Pages: []*llmstxt.Page{
			{URL: "https://react.dev/learn", Title: "Learn", QualityScore: &score, SiteKey: "react"},
		},
	})

	require.NoError(t, store.Save(context.Background(), idx))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	site := loaded.Site("react")
	require.NotNil(t, site)
	require.Len(t, site.Pages, 1)
	assert.Equal(t, "Learn", site.Pages[0].Title)
	require.NotNil(t, site.Pages[0].QualityScore)
	assert.Equal(t, 0.8, *site.Pages[0].QualityScore)
}

func TestIndexStore_SaveIsAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	store := fs.NewIndexStore(path)

	require.NoError(t, store.Save(context.Background(), llmstxt.NewIndex()))

	// No temporary sibling left behind after a successful save.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestIndexStore_CorruptFileIsEINVALID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := fs.NewIndexStore(path)
	_, err := store.Load(context.Background())
	assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
}

func TestIndexStore_PrettyOption(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	idx := llmstxt.NewIndex()
	idx.SetSite("react", &llmstxt.SiteIndex{Name: "React"})

	prettyPath := filepath.Join(dir, "pretty.json")
	require.NoError(t, fs.NewIndexStore(prettyPath, fs.WithPretty(true)).Save(context.Background(), idx))
	prettyData, err := os.ReadFile(prettyPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(prettyData), "\n  "), "pretty output is indented")

	minPath := filepath.Join(dir, "min.json")
	require.NoError(t, fs.NewIndexStore(minPath).Save(context.Background(), idx))
	minData, err := os.ReadFile(minPath)
	require.NoError(t, err)
	assert.Less(t, len(minData), len(prettyData))
}

func TestIndexStore_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deep", "index.json")
	store := fs.NewIndexStore(path)

	require.NoError(t, store.Save(context.Background(), llmstxt.NewIndex()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
