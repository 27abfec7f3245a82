package grader

import (
	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/levels"
)

// ValidateLevelAppropriateness scores how suitable content is for a learner
// at targetLevel. A target outside the content language's level family is
// always 0: a CET learner gets nothing from JLPT-tagged material and the
// score must say so unambiguously.
func (g *Grader) ValidateLevelAppropriateness(content *models.Content, targetLevel string) float64 {
	switch content.Language {
	case models.LanguageEnglish:
		if !levels.IsCET(targetLevel) {
			return 0
		}
	case models.LanguageJapanese:
		if !levels.IsJLPT(targetLevel) {
			return 0
		}
	}

	result := g.GradeContentLevel(content)
	if score, ok := result.LevelScores[targetLevel]; ok {
		return score
	}

	// The target never came up while grading, so estimate from how far it
	// sits from the assigned level. JLPT steps are cheaper because the scale
	// has five rungs to CET's three.
	switch content.Language {
	case models.LanguageEnglish:
		return levels.Distance(levels.CETLevels, result.AssignedLevel, targetLevel, 0.3)
	case models.LanguageJapanese:
		return levels.Distance(levels.JLPTLevels, result.AssignedLevel, targetLevel, 0.2)
	}
	return 0.5
}
