// Package llmstxt builds curated plain-text documentation corpora
// ("llms.txt" files) for feeding language models. It crawls documentation
// sites with a bounded breadth-first traversal, extracts main content
// through a fallback chain of strategies, scores page quality, and keeps
// an incremental on-disk index so repeat runs skip already-crawled pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, fs/) or
// their concern (crawl/, quality/).
package llmstxt
