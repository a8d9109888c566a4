// Package trafilatura provides the primary structured extraction strategy
// using go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/docsforge/llmstxt"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements llmstxt.ExtractStrategy at compile time.
var _ llmstxt.ExtractStrategy = (*Extractor)(nil)

// Extractor wraps go-trafilatura and converts the extracted content node
// to Markdown through the injected converter.
type Extractor struct {
	conv llmstxt.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor(conv llmstxt.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Name identifies the strategy.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract processes raw page HTML and returns the main content as
// Markdown with boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (*llmstxt.ExtractResult, error) {
	if rawHTML == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "no content node extracted")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}
	markdown, err := e.conv.Convert(contentHTML)
	if err != nil {
		return nil, err
	}

	return &llmstxt.ExtractResult{
		Title:     result.Metadata.Title,
		Content:   markdown,
		WordCount: llmstxt.CountWords(markdown),
		Method:    e.Name(),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
