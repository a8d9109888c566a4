package llmstxt

import (
	"regexp"
	"strings"
)

// Default crawl bounds applied by SiteConfig.ApplyDefaults.
const (
	DefaultMaxDepth        = 3
	DefaultMaxPages        = 100
	DefaultMaxEntryPoints  = 50
	DefaultMaxConcurrency  = 3
	DefaultMinWordCount    = 10
	DefaultAcceptableWords = 20
)

// Config is the process-wide crawl configuration: a map of site key to
// per-site settings. It is loaded once at startup and passed down
// explicitly; nothing in this repository caches it globally.
type Config struct {
	Sites map[string]*SiteConfig `json:"sites"`
}

// Site returns the configuration for a site key.
// Returns ENOTFOUND if the key is not configured.
func (c *Config) Site(key string) (*SiteConfig, error) {
	if c == nil || c.Sites == nil {
		return nil, Errorf(EINVALID, "crawl configuration is empty")
	}
	site, ok := c.Sites[key]
	if !ok {
		return nil, Errorf(ENOTFOUND, "unknown site key %q", key)
	}
	return site, nil
}

// SiteConfig describes one documentation source. It is immutable for the
// duration of a run.
type SiteConfig struct {
	Name            string          `json:"name"`
	BaseURL         string          `json:"baseUrl"`
	SeedURLs        []string        `json:"seedUrls"`
	MaxDepth        int             `json:"maxDepth"`
	MaxPages        int             `json:"maxPages"`
	MaxEntryPoints  int             `json:"maxEntryPoints"`
	MaxConcurrency  int             `json:"maxConcurrency"`
	SingleFile      bool            `json:"singleFile"`
	ExcludePatterns []string        `json:"excludePatterns"`
	Selectors       SelectorConfig  `json:"selectors"`
	ContentFilters  ContentFilters  `json:"contentFilters"`
}

// SelectorConfig holds CSS selectors for manual extraction, tried in order.
type SelectorConfig struct {
	Title   []string `json:"title"`
	Content []string `json:"content"`
}

// ContentFilters holds extraction and quality acceptance thresholds.
type ContentFilters struct {
	// MinWordCount rejects a page outright when the final extracted word
	// count falls below it.
	MinWordCount int `json:"minWordCount"`

	// AcceptableWords is the word count at which an extraction strategy's
	// result is accepted without consulting later strategies.
	AcceptableWords int `json:"acceptableWords"`

	// MinQualityScore marks pages scoring below it as quality-filtered.
	// Zero disables quality filtering.
	MinQualityScore float64 `json:"minQualityScore"`
}

// Validate returns an error if the site configuration is unusable.
func (s *SiteConfig) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	for _, pattern := range s.ExcludePatterns {
		if _, err := ParsePattern(pattern); err != nil {
			return Errorf(EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
	}
	return nil
}

// ApplyDefaults fills unset bounds with package defaults.
func (s *SiteConfig) ApplyDefaults() {
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultMaxDepth
	}
	if s.MaxPages <= 0 {
		s.MaxPages = DefaultMaxPages
	}
	if s.MaxEntryPoints <= 0 {
		s.MaxEntryPoints = DefaultMaxEntryPoints
	}
	if s.MaxConcurrency <= 0 {
		s.MaxConcurrency = DefaultMaxConcurrency
	}
	if s.ContentFilters.MinWordCount <= 0 {
		s.ContentFilters.MinWordCount = DefaultMinWordCount
	}
	if s.ContentFilters.AcceptableWords <= 0 {
		s.ContentFilters.AcceptableWords = DefaultAcceptableWords
	}
}

// ExcludeRegexps compiles the site's exclude patterns.
// Validate should be called first; compile failures here are reported
// as EINVALID all the same.
func (s *SiteConfig) ExcludeRegexps() ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(s.ExcludePatterns))
	for _, pattern := range s.ExcludePatterns {
		re, err := ParsePattern(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// ParsePattern compiles a config pattern string. Patterns may be written
// in /pattern/flags form (only the "i" flag is meaningful) or as plain
// regular expression source.
func ParsePattern(pattern string) (*regexp.Regexp, error) {
	source := pattern
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "/") {
		if end := strings.LastIndex(pattern, "/"); end > 0 {
			flags := pattern[end+1:]
			source = pattern[1:end]
			if strings.Contains(flags, "i") {
				source = "(?i)" + source
			}
		}
	}
	return regexp.Compile(source)
}
