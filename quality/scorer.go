// Package quality scores extracted documentation text on a bounded [0,1]
// scale from independently normalized sub-scores: readability, structural
// completeness, technical relevance, and boilerplate noise.
package quality

import (
	"regexp"
	"strings"

	"github.com/docsforge/llmstxt"
)

// Ensure Scorer implements llmstxt.Scorer at compile time.
var _ llmstxt.Scorer = (*Scorer)(nil)

// Weights blend the sub-scores into the overall score. They are a tunable
// configuration, not a fixed law; DefaultWeights reflects the shipped
// tuning.
type Weights struct {
	Completeness float64
	Readability  float64
	Technical    float64
	Noise        float64
}

// DefaultWeights returns the standard sub-score blend.
func DefaultWeights() Weights {
	return Weights{
		Completeness: 0.30,
		Readability:  0.25,
		Technical:    0.25,
		Noise:        0.20,
	}
}

// DefaultMinLength is the character count below which scoring
// short-circuits to zero.
const DefaultMinLength = 50

// Tuning constants for the readability sub-score.
const (
	idealWordsMin       = 100
	idealWordsMax       = 2000
	idealSentenceLength = 17.5
)

// Scorer computes quality assessments. It is pure and safe for concurrent
// use.
type Scorer struct {
	weights   Weights
	minLength int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights overrides the default sub-score blend.
func WithWeights(w Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// WithMinLength overrides the minimum-length short-circuit threshold.
func WithMinLength(n int) Option {
	return func(s *Scorer) { s.minLength = n }
}

// NewScorer creates a Scorer with default weights.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		weights:   DefaultWeights(),
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score assesses text quality. Absent or too-short input yields score 0;
// Score never fails.
func (s *Scorer) Score(text string) *llmstxt.QualityAssessment {
	if len(text) < s.minLength {
		return &llmstxt.QualityAssessment{
			OverallScore: 0,
			Level:        llmstxt.QualityPoor,
			Reason:       "below minimum length",
		}
	}

	words := strings.Fields(text)
	sentences := splitSentences(text)

	readability := s.readabilityScore(text, words, sentences)
	completeness := s.completenessScore(text, len(words))
	technical := s.technicalScore(text, len(words))
	noise := s.noiseScore(text)

	overall := clamp01(s.weights.Completeness*completeness +
		s.weights.Readability*readability +
		s.weights.Technical*technical +
		s.weights.Noise*noise)

	details := map[string]float64{
		"readability":  readability,
		"completeness": completeness,
		"technical":    technical,
		"noise":        noise,
	}

	return &llmstxt.QualityAssessment{
		OverallScore: overall,
		Level:        llmstxt.ClassifyScore(overall),
		Reason:       reason(details),
		Details:      details,
	}
}

// readabilityScore blends word-count band fit, sentence-length proximity
// to the ideal average, and vocabulary diversity, then discounts by the
// duplicate-sentence ratio.
func (s *Scorer) readabilityScore(text string, words []string, sentences []string) float64 {
	wc := len(words)
	if wc == 0 {
		return 0
	}

	var lengthScore float64
	switch {
	case wc < idealWordsMin:
		lengthScore = float64(wc) / float64(idealWordsMin)
	case wc <= idealWordsMax:
		lengthScore = 1
	default:
		over := float64(wc-idealWordsMax) / float64(idealWordsMax*4)
		lengthScore = clamp01(1 - over)
		if lengthScore < 0.3 {
			lengthScore = 0.3
		}
	}

	sentenceScore := 0.5
	if len(sentences) > 0 {
		avg := float64(wc) / float64(len(sentences))
		dev := avg - idealSentenceLength
		if dev < 0 {
			dev = -dev
		}
		sentenceScore = clamp01(1 - dev/idealSentenceLength)
	}

	unique := make(map[string]bool, wc)
	for _, w := range words {
		unique[strings.ToLower(strings.Trim(w, ".,;:!?()[]{}\"'"))] = true
	}
	diversity := float64(len(unique)) / float64(wc)
	diversityScore := clamp01(diversity / 0.5)

	repetition := duplicateSentenceRatio(sentences)

	return clamp01((lengthScore + sentenceScore + diversityScore) / 3 * (1 - repetition))
}

var (
	headingRE   = regexp.MustCompile(`(?mi)^#{1,6}\s|<h[1-6][\s>]`)
	listRE      = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s`)
	readMoreRE  = regexp.MustCompile(`(?i)\b(?:read more|continue reading|show more)\b`)
	terminalEnd = ".!?:)\"'`" + "\n"
)

// completenessScore rewards document structure and penalizes truncation
// markers.
func (s *Scorer) completenessScore(text string, wordCount int) float64 {
	var score float64
	if headingRE.MatchString(text) {
		score += 0.25
	}
	if strings.Contains(text, "```") {
		score += 0.20
	}
	if listRE.MatchString(text) {
		score += 0.15
	}
	if strings.Count(text, "\n\n") >= 2 {
		score += 0.20
	}
	if wordCount >= 300 {
		score += 0.20
	}

	trimmed := strings.TrimRight(text, " \n\t")
	if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…") {
		score -= 0.20
	} else if trimmed != "" && !strings.ContainsRune(terminalEnd, rune(trimmed[len(trimmed)-1])) {
		score -= 0.10
	}
	if readMoreRE.MatchString(text) {
		score -= 0.15
	}

	return clamp01(score)
}

// technicalTerms indicate documentation about software; variety matters
// more than raw density.
var technicalTerms = []string{
	"api", "function", "method", "class", "interface", "struct",
	"config", "configuration", "parameter", "argument", "variable",
	"server", "client", "request", "response", "endpoint", "http",
	"database", "query", "schema", "module", "package", "library",
	"install", "command", "example", "error", "token", "runtime",
	"deploy", "import", "return", "type",
}

var codePatternRE = regexp.MustCompile("`[^`\n]+`|" + `[\w-]+\.(?:json|ya?ml|toml|go|js|ts|py|rs|sh|md|txt|html|css)\b`)

// technicalScore measures density and variety of domain-indicative terms
// plus inline-code and file-extension patterns.
func (s *Scorer) technicalScore(text string, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	lower := strings.ToLower(text)

	var distinct, occurrences int
	for _, term := range technicalTerms {
		n := strings.Count(lower, term)
		if n > 0 {
			distinct++
			occurrences += n
		}
	}

	variety := clamp01(float64(distinct) / 10)
	density := clamp01(float64(occurrences) / float64(wordCount) * 20)
	patterns := clamp01(float64(len(codePatternRE.FindAllString(text, 6))) / 5)

	return clamp01(0.5*variety + 0.3*density + 0.2*patterns)
}

// noisePhrases mark advertising, navigation, and boilerplate remnants.
var noisePhrases = []string{
	"cookie", "subscribe", "newsletter", "advertisement", "sponsored",
	"all rights reserved", "privacy policy", "terms of service",
	"sign up", "click here", "skip to content", "edit this page",
	"was this page helpful", "back to top",
}

// noiseScore returns 1 for clean text and degrades with boilerplate
// phrase matches and excessive punctuation.
func (s *Scorer) noiseScore(text string) float64 {
	lower := strings.ToLower(text)

	var matches int
	for _, phrase := range noisePhrases {
		matches += strings.Count(lower, phrase)
	}
	phrasePenalty := clamp01(float64(matches) / 6)

	var punct int
	for _, r := range text {
		if r == '!' || r == '?' || r == '*' {
			punct++
		}
	}
	punctPenalty := clamp01(float64(punct) / float64(len(text)) * 50)

	return clamp01(1 - (0.7*phrasePenalty + 0.3*punctPenalty))
}

// reason names the weakest sub-score, or confirms overall soundness.
func reason(details map[string]float64) string {
	labels := map[string]string{
		"readability":  "weak readability",
		"completeness": "incomplete structure",
		"technical":    "low technical relevance",
		"noise":        "boilerplate noise",
	}
	lowest, lowestKey := 2.0, ""
	for key, score := range details {
		if score < lowest {
			lowest, lowestKey = score, key
		}
	}
	if lowest >= 0.7 {
		return "well-structured technical content"
	}
	return labels[lowestKey]
}

var sentenceSplitRE = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// splitSentences splits text into trimmed non-empty sentences.
func splitSentences(text string) []string {
	parts := sentenceSplitRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// duplicateSentenceRatio returns the share of duplicate normalized
// sentences among all sentences longer than 10 characters.
func duplicateSentenceRatio(sentences []string) float64 {
	seen := make(map[string]bool)
	var total, dups int
	for _, sentence := range sentences {
		norm := strings.ToLower(strings.Join(strings.Fields(sentence), " "))
		if len(norm) <= 10 {
			continue
		}
		total++
		if seen[norm] {
			dups++
		}
		seen[norm] = true
	}
	if total == 0 {
		return 0
	}
	return float64(dups) / float64(total)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
