package llmstxt

// ExtractResult is the uniform contract shared by all extraction
// strategies: Markdown-flavored content plus the evidence needed to pick
// between strategies.
type ExtractResult struct {
	Title     string
	Content   string
	WordCount int
	Method    string
}

// ExtractStrategy is one step in the content-extraction fallback chain.
// A strategy that cannot produce content returns an error; deciding
// whether a result is acceptable is the chain's job, not the strategy's.
type ExtractStrategy interface {
	// Name identifies the strategy (e.g., "trafilatura", "selector").
	Name() string

	// Extract processes raw page HTML and returns content with
	// boilerplate removed.
	Extract(html string) (*ExtractResult, error)
}

// ManualExtractor performs CSS-selector-driven extraction, the last
// resort of the fallback chain. Selectors come from per-site config.
type ManualExtractor interface {
	// ExtractContent tries each selector in order and returns the first
	// matching element's text with markup stripped and whitespace
	// collapsed.
	ExtractContent(html string, selectors []string) (*ExtractResult, error)

	// ExtractTitle tries each title selector in order.
	// The bool result is false when no selector matched.
	ExtractTitle(html string, selectors []string) (string, bool)
}

// Converter converts clean HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
