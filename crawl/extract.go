package crawl

import (
	"github.com/docsforge/llmstxt"
)

// ExtractorChain is the content-extraction fallback chain: structured
// strategies tried in order, then manual selector extraction. Acceptance
// is an explicit word-count predicate, not exception-driven control flow.
type ExtractorChain struct {
	// Structured strategies in preference order.
	Structured []llmstxt.ExtractStrategy

	// Manual is the selector-based last resort.
	Manual llmstxt.ManualExtractor

	// NoiseRules run after extraction. Nil means DefaultNoiseRules.
	NoiseRules []llmstxt.NoiseRule
}

// Extract runs the chain against one page. The first structured result at
// or above the acceptable word count wins; otherwise manual extraction
// competes on word count with the best structured attempt. A nil result
// with nil error is a filtering rejection (too few words or a soft-404),
// not a failure.
func (c *ExtractorChain) Extract(html, pageURL string, site *llmstxt.SiteConfig) (*llmstxt.ExtractResult, error) {
	acceptable := site.ContentFilters.AcceptableWords
	if acceptable <= 0 {
		acceptable = llmstxt.DefaultAcceptableWords
	}
	minWords := site.ContentFilters.MinWordCount
	if minWords <= 0 {
		minWords = llmstxt.DefaultMinWordCount
	}

	var chosen, best *llmstxt.ExtractResult
	for _, strategy := range c.Structured {
		result, err := strategy.Extract(html)
		if err != nil || result == nil {
			continue
		}
		if result.WordCount >= acceptable {
			chosen = result
			break
		}
		// Below threshold but non-trivial: remember for comparison.
		if best == nil || result.WordCount > best.WordCount {
			best = result
		}
	}

	if chosen == nil && c.Manual != nil {
		manual, err := c.Manual.ExtractContent(html, site.Selectors.Content)
		if err == nil && manual != nil {
			if best == nil || manual.WordCount > best.WordCount {
				best = manual
			}
		}
	}
	if chosen == nil {
		chosen = best
	}
	if chosen == nil {
		return nil, nil
	}

	title := c.resolveTitle(html, pageURL, site, chosen.Title)

	rules := c.NoiseRules
	if rules == nil {
		rules = llmstxt.DefaultNoiseRules()
	}
	content := llmstxt.FilterNoise(chosen.Content, rules)
	wordCount := llmstxt.CountWords(content)

	if wordCount < minWords {
		return nil, nil
	}
	if llmstxt.IsNotFoundPage(title, content, wordCount) {
		return nil, nil
	}

	return &llmstxt.ExtractResult{
		Title:     title,
		Content:   content,
		WordCount: wordCount,
		Method:    chosen.Method,
	}, nil
}

// resolveTitle is independent of content extraction: configured title
// selectors first, then the structured extractor's metadata title, then a
// URL-derived title.
func (c *ExtractorChain) resolveTitle(html, pageURL string, site *llmstxt.SiteConfig, extracted string) string {
	if c.Manual != nil && len(site.Selectors.Title) > 0 {
		if title, ok := c.Manual.ExtractTitle(html, site.Selectors.Title); ok {
			return title
		}
	}
	if extracted != "" {
		return extracted
	}
	return llmstxt.TitleFromURL(pageURL)
}
