// Package readability provides the secondary structured extraction
// strategy using go-readability.
package readability

import (
	"strings"

	"github.com/docsforge/llmstxt"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements llmstxt.ExtractStrategy at compile time.
var _ llmstxt.ExtractStrategy = (*Extractor)(nil)

// Extractor wraps go-readability and converts article content to
// Markdown through the injected converter.
type Extractor struct {
	conv llmstxt.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor(conv llmstxt.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Name identifies the strategy.
func (e *Extractor) Name() string {
	return "readability"
}

// Extract processes raw page HTML and returns the main content as
// Markdown with boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (*llmstxt.ExtractResult, error) {
	if rawHTML == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "no article content extracted")
	}

	markdown, err := e.conv.Convert(article.Content)
	if err != nil {
		return nil, err
	}

	return &llmstxt.ExtractResult{
		Title:     article.Title,
		Content:   markdown,
		WordCount: llmstxt.CountWords(markdown),
		Method:    e.Name(),
	}, nil
}
