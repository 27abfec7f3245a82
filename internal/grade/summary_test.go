package grade

import (
	"errors"
	"reflect"
	"testing"

	"github.com/btutor/content-grader/models"
)

func successResult(id, level string) Result {
	return Result{
		Path: "contents.yaml",
		Content: &models.Content{
			ContentID:       id,
			Title:           "Sample",
			Language:        models.LanguageEnglish,
			DifficultyLevel: "CET-4",
		},
		Grading: &models.LevelGradingResult{
			AssignedLevel:   level,
			ConfidenceScore: 0.8,
		},
		Quality:    models.QualityScore{OverallScore: 0.7},
		Vocabulary: make([]models.VocabularyItem, 3),
	}
}

func TestBuildSummarySuccess(t *testing.T) {
	summary := BuildSummary(successResult("en-001", "CET-4"))

	if summary.Status != "success" {
		t.Errorf("Status = %q, want success", summary.Status)
	}
	if summary.ContentID != "en-001" || summary.ClaimedLevel != "CET-4" {
		t.Errorf("identity = %q/%q", summary.ContentID, summary.ClaimedLevel)
	}
	if summary.AssignedLevel != "CET-4" || summary.Confidence != 0.8 {
		t.Errorf("grading = %q/%v", summary.AssignedLevel, summary.Confidence)
	}
	if summary.OverallScore != 0.7 || summary.VocabCount != 3 {
		t.Errorf("scores = %v/%d", summary.OverallScore, summary.VocabCount)
	}
	if summary.Error != "" || summary.ErrorType != "" {
		t.Errorf("success summary carries error fields: %+v", summary)
	}
}

func TestBuildSummaryFailure(t *testing.T) {
	summary := BuildSummary(Result{
		Path: "contents.yaml",
		Content: &models.Content{
			ContentID: "bad-001",
			Language:  models.LanguageEnglish,
		},
		Error:     errors.New("boom"),
		ErrorType: "normalize_error",
	})

	if summary.Status != "failed" {
		t.Errorf("Status = %q, want failed", summary.Status)
	}
	if summary.Error != "boom" || summary.ErrorType != "normalize_error" {
		t.Errorf("error fields = %q/%q", summary.Error, summary.ErrorType)
	}
	if summary.AssignedLevel != "" || summary.Confidence != 0 {
		t.Errorf("failed summary should not carry grading fields: %+v", summary)
	}
}

func TestBuildSummaryNilContent(t *testing.T) {
	summary := BuildSummary(Result{Path: "x.yaml", Error: errors.New("unreadable")})

	if summary.Status != "failed" || summary.ContentID != "" {
		t.Errorf("summary = %+v", summary)
	}
}

func TestLevelDistribution(t *testing.T) {
	results := []Result{
		successResult("a", "CET-4"),
		successResult("b", "CET-4"),
		successResult("c", "N3"),
		{Content: &models.Content{ContentID: "d"}, Error: errors.New("boom")},
	}

	got := LevelDistribution(results)
	want := map[string]int{"CET-4": 2, "N3": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LevelDistribution() = %v, want %v", got, want)
	}
}
