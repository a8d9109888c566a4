package llmstxt

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CorpusInput is one site's batch of per-URL outcomes: accepted pages,
// quality-filtered exclusions, and hard errors.
type CorpusInput struct {
	SiteName    string
	GeneratedAt time.Time
	Pages       []*Page
	Filtered    []*FilteredPage
	Errors      []*CrawlError
}

// CorpusOptions tune document assembly.
type CorpusOptions struct {
	// SortByQuality orders pages by descending quality score with a
	// stable tie-break on input order. When false, input order is kept.
	SortByQuality bool

	// MaxDocuments truncates the document to the top N pages after
	// sorting. Zero means no limit.
	MaxDocuments int

	// DiscloseFiltered lists quality-filtered URLs (ascending by score)
	// in the table of contents as a disclosed omission list.
	DiscloseFiltered bool
}

// maxReportErrors caps the number of errors echoed into the report.
const maxReportErrors = 10

// CorpusAssembler merges a site's qualifying pages into a single
// Markdown-flavored document plus a human-readable statistics report.
type CorpusAssembler struct {
	Options CorpusOptions
}

// Assemble produces the llms.txt document for one site.
func (a *CorpusAssembler) Assemble(in *CorpusInput) string {
	pages := a.orderedPages(in.Pages)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Documentation\n\n", in.SiteName)
	fmt.Fprintf(&b, "> Generated %s. %d pages", in.GeneratedAt.UTC().Format(time.RFC3339), len(pages))
	if len(in.Filtered) > 0 {
		fmt.Fprintf(&b, ", %d excluded for quality", len(in.Filtered))
	}
	if len(in.Errors) > 0 {
		fmt.Fprintf(&b, ", %d errors", len(in.Errors))
	}
	b.WriteString(".\n\n")

	if len(pages) == 0 {
		b.WriteString("No pages met the quality threshold for this site.\n")
		return b.String()
	}

	// Table of contents.
	b.WriteString("## Contents\n\n")
	for i, page := range pages {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, page.Title, page.URL)
	}
	b.WriteString("\n")

	// Disclosed omissions, worst score first.
	if a.Options.DiscloseFiltered && len(in.Filtered) > 0 {
		filtered := make([]*FilteredPage, len(in.Filtered))
		copy(filtered, in.Filtered)
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Score < filtered[j].Score
		})
		b.WriteString("## Excluded for quality\n\n")
		for _, f := range filtered {
			fmt.Fprintf(&b, "- %s (score %.2f)\n", f.URL, f.Score)
		}
		b.WriteString("\n")
	}

	for _, page := range pages {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "## %s\n\n", page.Title)
		fmt.Fprintf(&b, "Source: %s\n", page.URL)
		fmt.Fprintf(&b, "Words: %d\n", page.WordCount)
		if page.QualityScore != nil {
			fmt.Fprintf(&b, "Quality: %.2f (%s)\n", *page.QualityScore, ClassifyScore(*page.QualityScore))
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(page.Content, "\n"))
		b.WriteString("\n\n")
	}

	return b.String()
}

// Report produces the human-readable statistics report for one site.
func (a *CorpusAssembler) Report(in *CorpusInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crawl report: %s\n", in.SiteName)
	fmt.Fprintf(&b, "Generated: %s\n\n", in.GeneratedAt.UTC().Format(time.RFC3339))

	fmt.Fprintf(&b, "Pages accepted:   %d\n", len(in.Pages))
	fmt.Fprintf(&b, "Quality filtered: %d\n", len(in.Filtered))
	fmt.Fprintf(&b, "Errors:           %d\n", len(in.Errors))

	if len(in.Pages) > 0 {
		var sum float64
		scored := 0
		methods := make(map[string]int)
		for _, page := range in.Pages {
			if page.QualityScore != nil {
				sum += *page.QualityScore
				scored++
			}
			methods[page.ExtractionMethod]++
		}
		if scored > 0 {
			fmt.Fprintf(&b, "Average quality:  %.2f\n", sum/float64(scored))
		}

		b.WriteString("\nExtraction methods:\n")
		names := make([]string, 0, len(methods))
		for name := range methods {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %-14s %d\n", name, methods[name])
		}
	}

	if len(in.Errors) > 0 {
		b.WriteString("\nErrors")
		if len(in.Errors) > maxReportErrors {
			fmt.Fprintf(&b, " (first %d of %d)", maxReportErrors, len(in.Errors))
		}
		b.WriteString(":\n")
		for i, e := range in.Errors {
			if i >= maxReportErrors {
				break
			}
			fmt.Fprintf(&b, "  %s: %s\n", e.URL, e.Message)
		}
	}

	return b.String()
}

// orderedPages applies quality sorting and truncation without mutating the
// input slice.
func (a *CorpusAssembler) orderedPages(pages []*Page) []*Page {
	ordered := make([]*Page, len(pages))
	copy(ordered, pages)
	if a.Options.SortByQuality {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Score() > ordered[j].Score()
		})
	}
	if a.Options.MaxDocuments > 0 && len(ordered) > a.Options.MaxDocuments {
		ordered = ordered[:a.Options.MaxDocuments]
	}
	return ordered
}
