package db

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/btutor/content-grader/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func testContent(id string) *models.Content {
	return &models.Content{
		ContentID:       id,
		Title:           "Morning Routines",
		Body:            "I wake up early. I eat breakfast. I go to school.",
		Language:        models.LanguageEnglish,
		ContentType:     models.ContentTypeArticle,
		DifficultyLevel: "CET-4",
		SourceURL:       "https://example.com/routines",
	}
}

func testResult(level string) *models.LevelGradingResult {
	return &models.LevelGradingResult{
		AssignedLevel:   level,
		ConfidenceScore: 0.82,
		LevelScores:     map[string]float64{"CET-4": 0.82, "CET-5": 0.61, "CET-6": 0.3},
		QualityMetrics: models.QualityMetrics{
			VocabularyAppropriateness: 0.75,
			GrammarComplexity:         0.35,
			Readability:               0.9,
		},
		Recommendations: []string{"Add more everyday-life topics and scenarios"},
	}
}

func TestSaveAndGetReport(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	content := testContent("article-001")
	result := testResult("CET-4")

	reportID, err := database.SaveReport(content, result, 0.77, 4)
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if reportID <= 0 {
		t.Errorf("report ID = %d, want positive", reportID)
	}

	report, err := database.GetReport("article-001")
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}

	if report.ReportID != reportID {
		t.Errorf("ReportID = %d, want %d", report.ReportID, reportID)
	}
	if report.ContentID != content.ContentID || report.Title != content.Title {
		t.Errorf("identity fields = %q/%q", report.ContentID, report.Title)
	}
	if report.Language != "english" || report.ContentType != "article" {
		t.Errorf("language/type = %q/%q", report.Language, report.ContentType)
	}
	if report.ClaimedLevel != "CET-4" || report.AssignedLevel != "CET-4" {
		t.Errorf("levels = %q/%q", report.ClaimedLevel, report.AssignedLevel)
	}
	if report.Confidence != 0.82 || report.OverallQuality != 0.77 || report.VocabCount != 4 {
		t.Errorf("scores = %v/%v/%d", report.Confidence, report.OverallQuality, report.VocabCount)
	}
	if !reflect.DeepEqual(report.LevelScores, result.LevelScores) {
		t.Errorf("LevelScores = %v, want %v", report.LevelScores, result.LevelScores)
	}
	if report.Metrics != result.QualityMetrics {
		t.Errorf("Metrics = %+v, want %+v", report.Metrics, result.QualityMetrics)
	}
	if !reflect.DeepEqual(report.Recommendations, result.Recommendations) {
		t.Errorf("Recommendations = %v", report.Recommendations)
	}
	if report.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestGetReportLatestWins(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	content := testContent("regraded")
	if _, err := database.SaveReport(content, testResult("CET-4"), 0.5, 0); err != nil {
		t.Fatalf("first SaveReport() error = %v", err)
	}
	if _, err := database.SaveReport(content, testResult("CET-5"), 0.6, 0); err != nil {
		t.Fatalf("second SaveReport() error = %v", err)
	}

	report, err := database.GetReport("regraded")
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if report.AssignedLevel != "CET-5" {
		t.Errorf("AssignedLevel = %q, want the newer report", report.AssignedLevel)
	}
}

func TestGetReportMissing(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	_, err := database.GetReport("never-stored")
	if err == nil {
		t.Fatal("GetReport() on empty database should fail")
	}
	if !strings.Contains(err.Error(), "never-stored") {
		t.Errorf("error %q should name the content ID", err)
	}
}

func TestListReports(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	for i := 0; i < 5; i++ {
		content := testContent(fmt.Sprintf("item-%d", i))
		if _, err := database.SaveReport(content, testResult("CET-4"), 0.5, 0); err != nil {
			t.Fatalf("SaveReport() error = %v", err)
		}
	}

	japanese := testContent("item-ja")
	japanese.Language = models.LanguageJapanese
	if _, err := database.SaveReport(japanese, testResult("N3"), 0.5, 0); err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	t.Run("newest first", func(t *testing.T) {
		reports, err := database.ListReports("", 0)
		if err != nil {
			t.Fatalf("ListReports() error = %v", err)
		}
		if len(reports) != 6 {
			t.Fatalf("got %d reports, want 6", len(reports))
		}
		if reports[0].ContentID != "item-ja" || reports[5].ContentID != "item-0" {
			t.Errorf("order = %q ... %q, want newest first", reports[0].ContentID, reports[5].ContentID)
		}
	})

	t.Run("limit applies", func(t *testing.T) {
		reports, err := database.ListReports("", 2)
		if err != nil {
			t.Fatalf("ListReports() error = %v", err)
		}
		if len(reports) != 2 {
			t.Errorf("got %d reports, want 2", len(reports))
		}
	})

	t.Run("language filter", func(t *testing.T) {
		reports, err := database.ListReports("japanese", 0)
		if err != nil {
			t.Fatalf("ListReports() error = %v", err)
		}
		if len(reports) != 1 || reports[0].ContentID != "item-ja" {
			t.Fatalf("japanese filter = %+v, want only item-ja", reports)
		}

		reports, err = database.ListReports("english", 0)
		if err != nil {
			t.Fatalf("ListReports() error = %v", err)
		}
		if len(reports) != 5 {
			t.Errorf("english filter got %d reports, want 5", len(reports))
		}
	})
}

func TestLevelDistribution(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	levels := []string{"CET-4", "CET-4", "CET-6", "N3"}
	for i, level := range levels {
		content := testContent(fmt.Sprintf("dist-%d", i))
		if _, err := database.SaveReport(content, testResult(level), 0.5, 0); err != nil {
			t.Fatalf("SaveReport() error = %v", err)
		}
	}

	dist, err := database.LevelDistribution()
	if err != nil {
		t.Fatalf("LevelDistribution() error = %v", err)
	}
	want := map[string]int{"CET-4": 2, "CET-6": 1, "N3": 1}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("LevelDistribution() = %v, want %v", dist, want)
	}
}
