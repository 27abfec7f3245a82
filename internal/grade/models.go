package grade

import "github.com/btutor/content-grader/models"

// Job is one piece of content queued for grading.
type Job struct {
	Path    string
	Content *models.Content
}

// Result holds the outcome of grading one piece of content.
type Result struct {
	Path       string
	Content    *models.Content
	Grading    *models.LevelGradingResult
	Quality    models.QualityScore
	Vocabulary []models.VocabularyItem
	ReportID   int64
	Error      error
	ErrorType  string
}

// ResultSummary is the per-content entry of the final output.
type ResultSummary struct {
	ContentID     string  `json:"content_id" yaml:"content_id"`
	Path          string  `json:"path,omitempty" yaml:"path,omitempty"`
	Title         string  `json:"title,omitempty" yaml:"title,omitempty"`
	Language      string  `json:"language,omitempty" yaml:"language,omitempty"`
	ClaimedLevel  string  `json:"claimed_level,omitempty" yaml:"claimed_level,omitempty"`
	AssignedLevel string  `json:"assigned_level,omitempty" yaml:"assigned_level,omitempty"`
	Confidence    float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	OverallScore  float64 `json:"overall_score,omitempty" yaml:"overall_score,omitempty"`
	VocabCount    int     `json:"vocab_count" yaml:"vocab_count"`
	Status        string  `json:"status" yaml:"status"`
	Error         string  `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType     string  `json:"error_type,omitempty" yaml:"error_type,omitempty"`
}

// Stats aggregates a whole grading run.
type Stats struct {
	TotalContents     int            `json:"total_contents" yaml:"total_contents"`
	Successful        int            `json:"successful" yaml:"successful"`
	Failed            int            `json:"failed" yaml:"failed"`
	TotalTimeSeconds  float64        `json:"total_time_seconds" yaml:"total_time_seconds"`
	LevelDistribution map[string]int `json:"level_distribution" yaml:"level_distribution"`
}

// FinalOutput is the document printed to stdout when a run completes.
type FinalOutput struct {
	Status  string          `json:"status" yaml:"status"`
	Results []ResultSummary `json:"results" yaml:"results"`
	Stats   Stats           `json:"stats" yaml:"stats"`
}

// FilteredOutput replaces FinalOutput when --fields trims the result entries.
type FilteredOutput struct {
	Status  string           `json:"status" yaml:"status"`
	Results []map[string]any `json:"results" yaml:"results"`
	Stats   Stats            `json:"stats" yaml:"stats"`
}
