package llmstxt_test

import (
	"testing"

	"github.com/docsforge/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestClassifyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  llmstxt.QualityLevel
	}{
		{0.0, llmstxt.QualityPoor},
		{0.39, llmstxt.QualityPoor},
		{0.4, llmstxt.QualityFair},
		{0.59, llmstxt.QualityFair},
		{0.6, llmstxt.QualityGood},
		{0.79, llmstxt.QualityGood},
		{0.8, llmstxt.QualityExcellent},
		{1.0, llmstxt.QualityExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, llmstxt.ClassifyScore(tt.score), "score %v", tt.score)
	}
}
