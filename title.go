package llmstxt

import (
	"net/url"
	"strings"
)

// genericSegments are path leaves that say nothing about a page on their
// own and get augmented with parent or hostname context.
var genericSegments = map[string]bool{
	"index":           true,
	"home":            true,
	"docs":            true,
	"doc":             true,
	"documentation":   true,
	"getting-started": true,
	"readme":          true,
	"main":            true,
	"default":         true,
	"page":            true,
}

// TitleFromURL derives a human-readable title from a URL path: the last
// meaningful segment, humanized. Generic leaf segments (index, home, ...)
// pick up the parent segment, or the hostname when there is no parent.
func TitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	segments := pathSegments(u.Path)
	if len(segments) == 0 {
		return humanize(hostLabel(u.Host)) + " Documentation"
	}

	leaf := segments[len(segments)-1]
	if !genericSegments[strings.ToLower(leaf)] {
		return humanize(leaf)
	}

	// Generic leaf: augment with context.
	if len(segments) >= 2 {
		return humanize(segments[len(segments)-2]) + " " + humanize(leaf)
	}
	return humanize(hostLabel(u.Host)) + " " + humanize(leaf)
}

// Breadcrumbs derives the humanized ancestor path segments of a URL,
// excluding the leaf.
func Breadcrumbs(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	segments := pathSegments(u.Path)
	if len(segments) < 2 {
		return nil
	}
	crumbs := make([]string, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		crumbs = append(crumbs, humanize(seg))
	}
	return crumbs
}

// pathSegments splits a URL path into non-empty segments, dropping file
// extensions from the leaf.
func pathSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	if n := len(segments); n > 0 {
		leaf := segments[n-1]
		if idx := strings.LastIndex(leaf, "."); idx > 0 {
			segments[n-1] = leaf[:idx]
		}
	}
	return segments
}

// humanize converts a path segment to title-style words: underscores and
// hyphens become spaces, each word is capitalized.
func humanize(segment string) string {
	segment = strings.ReplaceAll(segment, "_", " ")
	segment = strings.ReplaceAll(segment, "-", " ")
	words := strings.Fields(segment)
	for i, word := range words {
		r := []rune(word)
		words[i] = strings.ToUpper(string(r[:1])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// hostLabel strips the common www prefix from a hostname.
func hostLabel(host string) string {
	return strings.TrimPrefix(host, "www.")
}
