package goquery

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docsforge/llmstxt"
)

// Ensure SelectorExtractor implements llmstxt.ManualExtractor at compile
// time.
var _ llmstxt.ManualExtractor = (*SelectorExtractor)(nil)

// defaultContentSelectors are tried when a site configures none.
var defaultContentSelectors = []string{
	"main",
	"article",
	".content",
	".documentation",
	"#content",
	"body",
}

// SelectorExtractor performs manual CSS-selector extraction, the last
// resort of the content fallback chain.
type SelectorExtractor struct{}

// NewSelectorExtractor creates a new SelectorExtractor.
func NewSelectorExtractor() *SelectorExtractor {
	return &SelectorExtractor{}
}

// ExtractContent tries each selector in order and returns the first
// matching element's text. Leaked markup is stripped, entities decoded,
// and whitespace collapsed.
func (e *SelectorExtractor) ExtractContent(rawHTML string, selectors []string) (*llmstxt.ExtractResult, error) {
	if rawHTML == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "failed to parse HTML: %v", err)
	}

	if len(selectors) == 0 {
		selectors = defaultContentSelectors
	}

	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := cleanText(sel.Text())
		if text == "" {
			continue
		}
		return &llmstxt.ExtractResult{
			Content:   text,
			WordCount: llmstxt.CountWords(text),
			Method:    "selector",
		}, nil
	}

	return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "no content selector matched")
}

// ExtractTitle tries each title selector in order. Falls back to the
// document <title> when the caller passes no selectors.
func (e *SelectorExtractor) ExtractTitle(rawHTML string, selectors []string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}

	if len(selectors) == 0 {
		selectors = []string{"h1", "title"}
	}

	for _, selector := range selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return collapseWhitespace(text), true
		}
	}
	return "", false
}

var leakedTagRE = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// cleanText strips any markup that leaked through text extraction,
// decodes entities, and collapses whitespace while keeping paragraph
// breaks.
func cleanText(text string) string {
	text = leakedTagRE.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = collapseWhitespace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

var spaceRunRE = regexp.MustCompile(`[ \t]+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRunRE.ReplaceAllString(s, " "))
}
