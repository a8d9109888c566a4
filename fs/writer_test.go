package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docsforge/llmstxt/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes corpus and report files per site", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewCorpusWriter(dir)

		corpusPath, err := writer.WriteCorpus("react", "# React Documentation\n")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "react-llms.txt"), corpusPath)

		reportPath, err := writer.WriteReport("react", "Crawl report: React\n")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "react-report.txt"), reportPath)

		data, err := os.ReadFile(corpusPath)
		require.NoError(t, err)
		assert.Equal(t, "# React Documentation\n", string(data))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "corpora")
		writer := fs.NewCorpusWriter(dir)

		path, err := writer.WriteCorpus("react", "content")
		require.NoError(t, err)
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}
