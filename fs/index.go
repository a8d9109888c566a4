package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/docsforge/llmstxt"
)

// Ensure IndexStore implements llmstxt.IndexStore at compile time.
var _ llmstxt.IndexStore = (*IndexStore)(nil)

// IndexStore persists the crawl index as a JSON file with atomic rewrite
// semantics: Save writes to a temporary sibling and renames it over the
// final path, so readers never observe partial state.
type IndexStore struct {
	path   string
	pretty bool
}

// Option configures an IndexStore.
type Option func(*IndexStore)

// WithPretty enables indented output. Production/CI contexts keep the
// index minified.
func WithPretty(pretty bool) Option {
	return func(s *IndexStore) { s.pretty = pretty }
}

// NewIndexStore creates an IndexStore backed by the given file path.
func NewIndexStore(path string, opts ...Option) *IndexStore {
	s := &IndexStore{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the index. A missing file yields an empty index, not an
// error; a corrupt file is EINVALID and aborts the run.
func (s *IndexStore) Load(ctx context.Context) (*llmstxt.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return llmstxt.NewIndex(), nil
		}
		return nil, err
	}

	idx := llmstxt.NewIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "parsing crawl index %s: %v", s.path, err)
	}
	return idx, nil
}

// Save rewrites the index atomically.
func (s *IndexStore) Save(ctx context.Context, idx *llmstxt.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var data []byte
	var err error
	if s.pretty {
		data, err = json.MarshalIndent(idx, "", "  ")
	} else {
		data, err = json.Marshal(idx)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
