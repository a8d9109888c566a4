package llmstxt

import "strings"

// Word-count band for body-based 404 detection. Real error pages are
// short; pages far outside the band are presumed legitimate content
// despite incidental "404" matches.
const (
	notFoundMinWords = 20
	notFoundMaxWords = 200
)

var titleNotFoundIndicators = []string{
	"404",
	"page not found",
	"not found",
}

// IsNotFoundPage reports whether an extracted page is a soft-404: a page
// that fetched with status 200 but carries not-found content. The title
// check is unconditional; the body check requires both a "404" and a
// "not found" phrase AND a word count inside the narrow error-page band.
func IsNotFoundPage(title, body string, wordCount int) bool {
	lowerTitle := strings.ToLower(title)
	for _, indicator := range titleNotFoundIndicators {
		if strings.Contains(lowerTitle, indicator) {
			return true
		}
	}

	if wordCount < notFoundMinWords || wordCount > notFoundMaxWords {
		return false
	}
	lowerBody := strings.ToLower(body)
	return strings.Contains(lowerBody, "404") && strings.Contains(lowerBody, "not found")
}
