package fs

import (
	"os"
	"path/filepath"
)

// CorpusWriter writes assembled corpus documents and their statistics
// reports, one pair of files per site.
type CorpusWriter struct {
	baseDir string
}

// NewCorpusWriter creates a CorpusWriter rooted at baseDir.
func NewCorpusWriter(baseDir string) *CorpusWriter {
	return &CorpusWriter{baseDir: baseDir}
}

// WriteCorpus writes a site's llms.txt document.
func (w *CorpusWriter) WriteCorpus(siteKey, document string) (string, error) {
	return w.write(siteKey+"-llms.txt", document)
}

// WriteReport writes a site's statistics report.
func (w *CorpusWriter) WriteReport(siteKey, report string) (string, error) {
	return w.write(siteKey+"-report.txt", report)
}

func (w *CorpusWriter) write(name, content string) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
