package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btutor/content-grader/models"
)

// Report is a stored grading result.
type Report struct {
	ReportID        int64
	ContentID       string
	Title           string
	Language        string
	ContentType     string
	ClaimedLevel    string
	AssignedLevel   string
	Confidence      float64
	LevelScores     map[string]float64
	Metrics         models.QualityMetrics
	Recommendations []string
	OverallQuality  float64
	VocabCount      int
	SourceURL       string
	CreatedAt       time.Time
}

// SaveReport stores one grading result, returning the report_id.
func (db *DB) SaveReport(content *models.Content, result *models.LevelGradingResult, overallQuality float64, vocabCount int) (int64, error) {
	levelScores, err := json.Marshal(result.LevelScores)
	if err != nil {
		return 0, fmt.Errorf("failed to encode level scores: %w", err)
	}
	metrics, err := json.Marshal(result.QualityMetrics)
	if err != nil {
		return 0, fmt.Errorf("failed to encode metrics: %w", err)
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return 0, fmt.Errorf("failed to encode recommendations: %w", err)
	}

	res, err := db.Exec(`
		INSERT INTO grading_reports (
			content_id, title, language, content_type, claimed_level,
			assigned_level, confidence, level_scores, metrics,
			recommendations, overall_quality, vocab_count, source_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, content.ContentID, content.Title, string(content.Language), string(content.ContentType),
		content.DifficultyLevel, result.AssignedLevel, result.ConfidenceScore,
		string(levelScores), string(metrics), string(recommendations),
		overallQuality, vocabCount, content.SourceURL)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	reportID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report ID: %w", err)
	}
	return reportID, nil
}

// GetReport returns the most recent report for a content ID.
func (db *DB) GetReport(contentID string) (*Report, error) {
	row := db.QueryRow(`
		SELECT report_id, content_id, title, language, content_type, claimed_level,
		       assigned_level, confidence, level_scores, metrics, recommendations,
		       overall_quality, vocab_count, source_url, created_at
		FROM grading_reports
		WHERE content_id = ?
		ORDER BY report_id DESC
		LIMIT 1
	`, contentID)

	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no report for content %q", contentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return report, nil
}

// ListReports returns the newest reports, most recent first. A non-empty
// language restricts the listing to that language. limit <= 0 means no
// limit.
func (db *DB) ListReports(language string, limit int) ([]*Report, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT report_id, content_id, title, language, content_type, claimed_level,
		       assigned_level, confidence, level_scores, metrics, recommendations,
		       overall_quality, vocab_count, source_url, created_at
		FROM grading_reports`
	args := []any{}
	if language != "" {
		query += `
		WHERE language = ?`
		args = append(args, language)
	}
	query += `
		ORDER BY report_id DESC
		LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// LevelDistribution counts stored reports per assigned level.
func (db *DB) LevelDistribution() (map[string]int, error) {
	rows, err := db.Query(`
		SELECT assigned_level, COUNT(*)
		FROM grading_reports
		GROUP BY assigned_level
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query level distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[string]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan level count: %w", err)
		}
		dist[level] = count
	}
	return dist, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*Report, error) {
	var r Report
	var levelScores, metrics, recommendations string
	err := row.Scan(&r.ReportID, &r.ContentID, &r.Title, &r.Language, &r.ContentType,
		&r.ClaimedLevel, &r.AssignedLevel, &r.Confidence, &levelScores, &metrics,
		&recommendations, &r.OverallQuality, &r.VocabCount, &r.SourceURL, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(levelScores), &r.LevelScores); err != nil {
		return nil, fmt.Errorf("failed to decode level scores: %w", err)
	}
	if err := json.Unmarshal([]byte(metrics), &r.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}
	if recommendations != "" {
		if err := json.Unmarshal([]byte(recommendations), &r.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}
	}
	return &r, nil
}
