package grade

// BuildSummary flattens one grading result into its output entry.
func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{
		Path:       r.Path,
		VocabCount: len(r.Vocabulary),
	}
	if r.Content != nil {
		summary.ContentID = r.Content.ContentID
		summary.Title = r.Content.Title
		summary.Language = string(r.Content.Language)
		summary.ClaimedLevel = r.Content.DifficultyLevel
	}
	if r.Error != nil {
		summary.Status = "failed"
		summary.Error = r.Error.Error()
		summary.ErrorType = r.ErrorType
		return summary
	}
	summary.Status = "success"
	summary.AssignedLevel = r.Grading.AssignedLevel
	summary.Confidence = r.Grading.ConfidenceScore
	summary.OverallScore = r.Quality.OverallScore
	return summary
}

// LevelDistribution counts how many contents landed on each level.
func LevelDistribution(results []Result) map[string]int {
	dist := make(map[string]int)
	for _, r := range results {
		if r.Error == nil && r.Grading != nil {
			dist[r.Grading.AssignedLevel]++
		}
	}
	return dist
}
