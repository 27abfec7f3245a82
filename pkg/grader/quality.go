package grader

import (
	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/textstat"
)

// AssessQuality rolls content up into a curriculum-admission score.
// sourceReliability and freshness come from the caller because they depend on
// where and when the content was obtained, not on its text.
func (g *Grader) AssessQuality(content *models.Content, sourceReliability, freshness float64) models.QualityScore {
	sourceReliability = textstat.Clamp(sourceReliability, 0, 1)
	freshness = textstat.Clamp(freshness, 0, 1)

	m := g.calc.ComputeMetrics(content)

	switch content.Language {
	case models.LanguageEnglish:
		diff := g.DifficultyMatch(content, content.DifficultyLevel)
		return models.QualityScore{
			EducationalValue:  m.EducationalValue,
			DifficultyMatch:   diff,
			SourceReliability: sourceReliability,
			ContentFreshness:  freshness,
			OverallScore: m.EducationalValue*0.35 + diff*0.25 +
				sourceReliability*0.20 + freshness*0.10 + m.Readability*0.10,
		}
	case models.LanguageJapanese:
		diff := g.DifficultyMatch(content, content.DifficultyLevel)
		return models.QualityScore{
			EducationalValue:  m.EducationalValue,
			DifficultyMatch:   diff,
			SourceReliability: sourceReliability,
			ContentFreshness:  freshness,
			OverallScore: m.EducationalValue*0.35 + diff*0.25 +
				sourceReliability*0.20 + freshness*0.10 + m.Authenticity*0.10,
		}
	default:
		// Without a recognized language the text-derived metrics are
		// placeholders, so provenance carries more of the weight.
		return models.QualityScore{
			EducationalValue:  0.6,
			DifficultyMatch:   0.5,
			SourceReliability: sourceReliability,
			ContentFreshness:  freshness,
			OverallScore:      0.6*0.4 + sourceReliability*0.3 + freshness*0.2 + 0.5*0.1,
		}
	}
}

// DifficultyMatch measures how well content's measured difficulty agrees with
// the given level's criteria, independent of the full grading pass.
func (g *Grader) DifficultyMatch(content *models.Content, level string) float64 {
	switch content.Language {
	case models.LanguageEnglish:
		return g.englishDifficultyMatch(content, level)
	case models.LanguageJapanese:
		return g.japaneseDifficultyMatch(content, level)
	default:
		return 0.5
	}
}

// AssessLevelAccuracy checks content against the level it claims for itself.
func (g *Grader) AssessLevelAccuracy(content *models.Content) float64 {
	if content.Language != models.LanguageEnglish && content.Language != models.LanguageJapanese {
		return 0.5
	}
	return g.DifficultyMatch(content, content.DifficultyLevel)
}

func (g *Grader) englishDifficultyMatch(content *models.Content, level string) float64 {
	text := content.Text()
	words := textstat.EnglishWords(text)
	if len(words) == 0 {
		return 0.5
	}

	avgWord := textstat.AvgWordLength(words)
	sentences := textstat.EnglishSentences(text)
	avgSentence := textstat.AvgSentenceLength(len(words), len(sentences))

	crit := g.tables.CET(level)

	wordScore := bandScore(avgWord, crit.WordLength.Min, crit.WordLength.Max, 2.0, 3.0)
	sentenceScore := bandScore(avgSentence, crit.SentenceLength.Min, crit.SentenceLength.Max, 5.0, 8.0)

	// Without a usable vocabulary list for the level, assume a decent match
	// rather than punishing the content for our own table gaps.
	vocabScore := 0.7
	if set, ok := g.tables.LevelVocabulary(models.LanguageEnglish, level); ok && len(set) > 10 {
		hits := 0
		for _, w := range words {
			if _, in := set[w]; in {
				hits++
			}
		}
		vocabScore = min(1.0, float64(hits)/float64(len(words))+0.3)
	}

	return textstat.Clamp(wordScore*0.4+sentenceScore*0.3+vocabScore*0.3, 0.1, 1)
}

func (g *Grader) japaneseDifficultyMatch(content *models.Content, level string) float64 {
	counts := textstat.CountJapanese(content.Text())
	if counts.Total() == 0 {
		return 0
	}
	expected := g.tables.JLPT(level).KanjiRatio
	return max(0, 1.0-abs(counts.KanjiRatio()-expected)*2.0)
}

// bandScore is 1.0 inside [lo, hi] and decays linearly toward a 0.3 floor
// outside it, with separate decay rates below and above the band.
func bandScore(v, lo, hi, belowDiv, aboveDiv float64) float64 {
	switch {
	case v >= lo && v <= hi:
		return 1.0
	case v < lo:
		return max(0.3, 1.0-(lo-v)/belowDiv)
	default:
		return max(0.3, 1.0-(v-hi)/aboveDiv)
	}
}
