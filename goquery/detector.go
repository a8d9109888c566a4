package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docsforge/llmstxt"
)

// Ensure Detector implements llmstxt.FrameworkDetector at compile time.
var _ llmstxt.FrameworkDetector = (*Detector)(nil)

// Detector identifies documentation frameworks from HTML content using
// framework-specific CSS classes, data attributes, and meta tags. The
// result drives fetcher selection: client-rendered frameworks need a
// browser fetch.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) llmstxt.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return llmstxt.FrameworkUnknown
	}

	// Meta generator tags are the most reliable signal when present.
	if framework := d.detectFromMetaGenerator(doc); framework != llmstxt.FrameworkUnknown {
		return framework
	}

	switch {
	case has(doc, "#__docusaurus_skipToContent_fallback") ||
		has(doc, ".theme-doc-sidebar-container"):
		return llmstxt.FrameworkDocusaurus
	case has(doc, "[data-md-color-scheme]") ||
		has(doc, "[data-md-component]") ||
		has(doc, ".md-nav--primary"):
		return llmstxt.FrameworkMkDocs
	case has(doc, ".toctree-wrapper") ||
		has(doc, ".wy-nav-side") ||
		has(doc, ".sphinxsidebar"):
		return llmstxt.FrameworkSphinx
	case has(doc, "#VPContent") || has(doc, ".VPDoc"):
		return llmstxt.FrameworkVitePress
	case has(doc, ".theme-default-content") || has(doc, ".sidebar-links"):
		return llmstxt.FrameworkVuePress
	case has(doc, "[data-testid='space.sidebar']") ||
		has(doc, "[data-testid='page.desktopTableOfContents']"):
		return llmstxt.FrameworkGitBook
	case has(doc, ".nextra-navbar") ||
		has(doc, ".nextra-sidebar") ||
		has(doc, ".nextra-toc"):
		return llmstxt.FrameworkNextra
	}

	return llmstxt.FrameworkUnknown
}

// RequiresJS reports whether a framework renders its content client-side.
// Static-site generators serve complete HTML; app-shell frameworks do not.
func (d *Detector) RequiresJS(framework llmstxt.Framework) bool {
	switch framework {
	case llmstxt.FrameworkGitBook, llmstxt.FrameworkNextra:
		return true
	}
	return false
}

func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) llmstxt.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	if generator == "" {
		return llmstxt.FrameworkUnknown
	}

	switch {
	case strings.Contains(generator, "sphinx"):
		return llmstxt.FrameworkSphinx
	case strings.Contains(generator, "gitbook"):
		return llmstxt.FrameworkGitBook
	case strings.Contains(generator, "docusaurus"):
		return llmstxt.FrameworkDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return llmstxt.FrameworkMkDocs
	case strings.Contains(generator, "vitepress"):
		return llmstxt.FrameworkVitePress
	case strings.Contains(generator, "vuepress"):
		return llmstxt.FrameworkVuePress
	case strings.Contains(generator, "nextra"):
		return llmstxt.FrameworkNextra
	}
	return llmstxt.FrameworkUnknown
}

func has(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
