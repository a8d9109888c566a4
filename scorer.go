package llmstxt

// QualityLevel partitions the [0,1] quality score into an ordered scale.
type QualityLevel string

// Quality classification levels, from worst to best.
const (
	QualityPoor      QualityLevel = "poor"
	QualityFair      QualityLevel = "fair"
	QualityGood      QualityLevel = "good"
	QualityExcellent QualityLevel = "excellent"
)

// Classification cut points.
const (
	FairThreshold      = 0.4
	GoodThreshold      = 0.6
	ExcellentThreshold = 0.8
)

// ClassifyScore maps a score onto the quality scale.
func ClassifyScore(score float64) QualityLevel {
	switch {
	case score >= ExcellentThreshold:
		return QualityExcellent
	case score >= GoodThreshold:
		return QualityGood
	case score >= FairThreshold:
		return QualityFair
	default:
		return QualityPoor
	}
}

// QualityAssessment is the derived result of scoring one page's text.
// Only the resulting score survives on a Page record; assessments are
// never persisted standalone.
type QualityAssessment struct {
	OverallScore float64
	Level        QualityLevel
	Reason       string
	Details      map[string]float64
}

// Scorer computes a bounded [0,1] quality score from extracted text.
// Implementations are pure: identical input yields identical output, and
// absent or invalid input yields score 0, never an error.
type Scorer interface {
	Score(text string) *QualityAssessment
}
