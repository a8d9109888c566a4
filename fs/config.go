// Package fs provides file-based persistence: crawl configuration
// loading, the JSON crawl index, and corpus/report output files.
package fs

import (
	"encoding/json"
	"os"

	"github.com/docsforge/llmstxt"
)

// LoadConfig reads the crawl configuration file: a JSON map of site key
// to site settings. The result is validated, defaulted, and meant to be
// loaded once per process and passed down explicitly.
func LoadConfig(path string) (*llmstxt.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "crawl config %s not found", path)
		}
		return nil, err
	}

	sites := make(map[string]*llmstxt.SiteConfig)
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "parsing crawl config %s: %v", path, err)
	}

	for key, site := range sites {
		if err := site.Validate(); err != nil {
			return nil, llmstxt.Errorf(llmstxt.EINVALID, "site %q: %s", key, llmstxt.ErrorMessage(err))
		}
		site.ApplyDefaults()
	}

	return &llmstxt.Config{Sites: sites}, nil
}
