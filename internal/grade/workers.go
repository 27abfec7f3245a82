package grade

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/db"
	"github.com/btutor/content-grader/pkg/detector"
	"github.com/btutor/content-grader/pkg/grader"
	"github.com/btutor/content-grader/pkg/htmltext"
	"github.com/btutor/content-grader/pkg/vocab"
)

// pipeline holds the shared, read-only components every worker uses.
type pipeline struct {
	detector    *detector.Detector
	grader      *grader.Grader
	extractor   *vocab.Extractor
	database    *db.DB
	reliability float64
	freshness   float64
}

func run(logger *slog.Logger, p *pipeline, jobs []Job, workerCount int) ([]Result, error) {
	if workerCount <= 0 {
		workerCount = 4
	}

	logger.Info("Starting grading phase", "content_count", len(jobs), "workers", workerCount)

	var wg sync.WaitGroup
	jobCh := make(chan Job, len(jobs))
	resultCh := make(chan Result, len(jobs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, p, &wg, jobCh, resultCh)
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	wg.Wait()
	close(resultCh)
	logger.Info("All grading workers finished")

	allResults := make([]Result, 0, len(jobs))
	var runErr error
	for result := range resultCh {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more contents failed")
		}
	}
	return allResults, runErr
}

func worker(id int, logger *slog.Logger, p *pipeline, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "content_id", job.Content.ContentID, "path", job.Path)
		results <- p.gradeOne(id, logger, job)
	}
}

// gradeOne runs one content through the full pipeline: normalize, detect
// language, grade, score quality, extract vocabulary, store the report.
func (p *pipeline) gradeOne(id int, logger *slog.Logger, job Job) Result {
	content := job.Content
	result := Result{Path: job.Path, Content: content}

	body, err := htmltext.Normalize(content.Body, content.SourceURL)
	if err != nil {
		logger.Error("Error normalizing content body", "worker_id", id, "content_id", content.ContentID, "error", err)
		result.Error = err
		result.ErrorType = "normalize_error"
		return result
	}
	if content.Title == "" {
		content.Title = htmltext.Title(content.Body, content.SourceURL)
	}
	content.Body = body

	content.Language = p.detector.Resolve(content)
	if content.Language != models.LanguageEnglish && content.Language != models.LanguageJapanese {
		logger.Warn("Content language not recognized, grading generically",
			"worker_id", id, "content_id", content.ContentID)
	}

	result.Grading = p.grader.GradeContentLevel(content)
	result.Quality = p.grader.AssessQuality(content, p.reliability, p.freshness)
	result.Vocabulary = p.extractor.Extract(content)

	if p.database != nil {
		reportID, err := p.database.SaveReport(content, result.Grading, result.Quality.OverallScore, len(result.Vocabulary))
		if err != nil {
			logger.Error("Error saving report", "worker_id", id, "content_id", content.ContentID, "error", err)
			result.Error = err
			result.ErrorType = "store_error"
			return result
		}
		result.ReportID = reportID
	}

	logger.Info("Worker finished job", "worker_id", id, "content_id", content.ContentID,
		"assigned_level", result.Grading.AssignedLevel, "confidence", result.Grading.ConfidenceScore)
	return result
}
