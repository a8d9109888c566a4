package llmstxt

import (
	"fmt"
	"regexp"
	"strings"
)

// NoiseRule is one ordered (pattern, replacement) cleanup step for
// framework-injection artifacts. Rules apply in sequence and each is
// independently unit-testable.
type NoiseRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply runs the rule against text.
func (r NoiseRule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, r.Replacement)
}

// DefaultNoiseRules returns the standard cleanup sequence. Order matters:
// block-level artifacts (scripts, comments, hydration payloads) go first
// so later inline rules see less input.
func DefaultNoiseRules() []NoiseRule {
	return []NoiseRule{
		{
			Name:        "html-comments",
			Pattern:     regexp.MustCompile(`(?s)<!--.*?-->`),
			Replacement: "",
		},
		{
			Name:        "script-tags",
			Pattern:     regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`),
			Replacement: "",
		},
		{
			Name:        "style-tags",
			Pattern:     regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`),
			Replacement: "",
		},
		{
			Name:        "next-hydration",
			Pattern:     regexp.MustCompile(`(?m)^.*self\.__next_f\.push\(.*$`),
			Replacement: "",
		},
		{
			Name:        "next-data",
			Pattern:     regexp.MustCompile(`(?m)^.*__NEXT_DATA__.*$`),
			Replacement: "",
		},
		{
			Name:        "nuxt-state",
			Pattern:     regexp.MustCompile(`(?m)^.*window\.__NUXT__.*$`),
			Replacement: "",
		},
		{
			Name:        "remix-context",
			Pattern:     regexp.MustCompile(`(?m)^.*window\.__remixContext.*$`),
			Replacement: "",
		},
		{
			Name:        "hydration-json",
			Pattern:     regexp.MustCompile(`(?m)^\{"(?:props|page|data|state)":.*$`),
			Replacement: "",
		},
		{
			Name:        "attr-leakage",
			Pattern:     regexp.MustCompile(`\s?(?:class|style|data-[a-z-]+)="[^"]*"`),
			Replacement: "",
		},
		{
			Name:        "stray-tags",
			Pattern:     regexp.MustCompile(`</?(?:div|span|section|nav|aside|header|footer|button|svg|path|img|source|picture|iframe)\b[^>]*>`),
			Replacement: "",
		},
		{
			Name:        "blank-runs",
			Pattern:     regexp.MustCompile(`\n{3,}`),
			Replacement: "\n\n",
		},
	}
}

var fencedBlockRE = regexp.MustCompile("(?s)(```|~~~).*?(```|~~~|$)")

// FilterNoise applies the rule sequence to text while preserving code
// verbatim. Fenced code blocks are lifted out before any rule runs and
// restored byte-identical afterwards; indented code lines (tab or 4-space)
// are likewise left untouched by the inline rules.
func FilterNoise(text string, rules []NoiseRule) string {
	protected, blocks := protectFencedBlocks(text)

	// Block-level rules run on the whole text; inline rules run per line
	// so indented code stays verbatim.
	lines := strings.Split(protected, "\n")
	for _, rule := range rules {
		if isLineRule(rule) {
			for i, line := range lines {
				if isIndentedCode(line) {
					continue
				}
				lines[i] = rule.Apply(line)
			}
		} else {
			joined := rule.Apply(strings.Join(lines, "\n"))
			lines = strings.Split(joined, "\n")
		}
	}
	result := strings.Join(lines, "\n")

	// Restore fenced blocks.
	for i, block := range blocks {
		placeholder := fmt.Sprintf("\x00CODEBLOCK%d\x00", i)
		result = strings.Replace(result, placeholder, block, 1)
	}
	return result
}

// protectFencedBlocks swaps each fenced block for a placeholder sitting
// on its own line. The isolation matters: line-deleting rules that match
// artifact text sharing a line with a fence must not take the placeholder
// down with the rest of the line.
func protectFencedBlocks(text string) (string, []string) {
	var blocks []string
	var b strings.Builder
	last := 0
	for _, loc := range fencedBlockRE.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		b.WriteString(text[last:start])
		if start > 0 && text[start-1] != '\n' {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "\x00CODEBLOCK%d\x00", len(blocks))
		if end < len(text) && text[end] != '\n' {
			b.WriteByte('\n')
		}
		blocks = append(blocks, text[start:end])
		last = end
	}
	b.WriteString(text[last:])
	return b.String(), blocks
}

// isLineRule reports whether a rule must be confined to single non-code
// lines. Multi-line rules (comments, script bodies) need the whole text.
func isLineRule(rule NoiseRule) bool {
	switch rule.Name {
	case "attr-leakage", "stray-tags":
		return true
	}
	return false
}

// isIndentedCode reports whether a line is indented-code per Markdown
// conventions.
func isIndentedCode(line string) bool {
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ")
}
