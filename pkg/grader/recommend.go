package grader

import "github.com/btutor/content-grader/models"

// GenerateImprovementRecommendations lists concrete edits that would move
// content toward targetLevel: metric shortfalls first, then level-specific
// guidance. The order is stable so callers can diff runs.
func (g *Grader) GenerateImprovementRecommendations(content *models.Content, targetLevel string) []string {
	m := g.calc.ComputeMetrics(content)

	var recs []string
	if m.VocabularyAppropriateness < 0.7 {
		recs = append(recs, "Adjust vocabulary difficulty to better match the target level")
	}
	if m.GrammarComplexity < 0.6 {
		recs = append(recs, "Increase the variety and complexity of grammar structures")
	}
	if m.ContentStructure < 0.7 {
		recs = append(recs, "Improve content structure and organization")
	}
	if m.EducationalValue < 0.8 {
		recs = append(recs, "Strengthen educational value with more explicit learning points")
	}
	if m.Readability < 0.6 {
		recs = append(recs, "Improve readability by simplifying overly long sentences")
	}

	return append(recs, g.levelRecommendations(content.Language, targetLevel)...)
}

// levelRecommendations returns the fixed guidance for a single level.
func (g *Grader) levelRecommendations(lang models.Language, level string) []string {
	switch lang {
	case models.LanguageEnglish:
		switch level {
		case "CET-4":
			return []string{
				"Use more basic vocabulary and simple sentence patterns",
				"Add more everyday-life topics and scenarios",
			}
		case "CET-5":
			return []string{
				"Balance basic and intermediate vocabulary",
				"Add more academic and workplace content",
			}
		case "CET-6":
			return []string{
				"Use more advanced vocabulary and complex grammatical structures",
				"Add abstract concepts and deeper analysis",
			}
		}
	case models.LanguageJapanese:
		switch level {
		case "N5", "N4":
			return []string{
				"Reduce kanji usage and raise the hiragana ratio",
				"Use more everyday conversational expressions",
			}
		case "N3":
			return []string{
				"Balance kanji and kana usage",
				"Add more intermediate grammar expressions",
			}
		case "N2", "N1":
			return []string{
				"Increase kanji density and complex grammar usage",
				"Add more formal and written-register expressions",
			}
		}
	}
	return nil
}
