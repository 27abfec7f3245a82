package models

// QualityMetrics holds the eight per-content sub-metrics. Every field is
// clamped to [0.0, 1.0] by the calculator that produces it.
type QualityMetrics struct {
	VocabularyAppropriateness float64 `json:"vocabulary_appropriateness" yaml:"vocabulary_appropriateness"`
	GrammarComplexity         float64 `json:"grammar_complexity" yaml:"grammar_complexity"`
	ContentStructure          float64 `json:"content_structure" yaml:"content_structure"`
	EducationalValue          float64 `json:"educational_value" yaml:"educational_value"`
	Authenticity              float64 `json:"authenticity" yaml:"authenticity"`
	CulturalRelevance         float64 `json:"cultural_relevance" yaml:"cultural_relevance"`
	Readability               float64 `json:"readability" yaml:"readability"`
	EngagementFactor          float64 `json:"engagement_factor" yaml:"engagement_factor"`
}

// LevelGradingResult is the outcome of grading one content item against every
// level in its language family.
//
// Invariants: LevelScores[AssignedLevel] == max(LevelScores) and
// ConfidenceScore == LevelScores[AssignedLevel], even after the confidence
// floor is applied.
type LevelGradingResult struct {
	AssignedLevel   string             `json:"assigned_level" yaml:"assigned_level"`
	ConfidenceScore float64            `json:"confidence_score" yaml:"confidence_score"`
	LevelScores     map[string]float64 `json:"level_scores" yaml:"level_scores"`
	QualityMetrics  QualityMetrics     `json:"quality_metrics" yaml:"quality_metrics"`
	Recommendations []string           `json:"recommendations" yaml:"recommendations"`
}

// QualityScore is the aggregate admissibility score handed to content-filter
// collaborators. SourceReliability and ContentFreshness are supplied by the
// caller; the grading core only combines them.
type QualityScore struct {
	EducationalValue  float64 `json:"educational_value" yaml:"educational_value"`
	DifficultyMatch   float64 `json:"difficulty_match" yaml:"difficulty_match"`
	SourceReliability float64 `json:"source_reliability" yaml:"source_reliability"`
	ContentFreshness  float64 `json:"content_freshness" yaml:"content_freshness"`
	OverallScore      float64 `json:"overall_score" yaml:"overall_score"`
}
