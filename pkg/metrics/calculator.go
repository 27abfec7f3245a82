// Package metrics derives the eight per-content quality sub-metrics from raw
// text and the level lookup tables. Every metric is a pure function of the
// content and is clamped to [0.0, 1.0]; degenerate input (no tokens, no
// sentences) short-circuits to a documented default instead of failing.
package metrics

import (
	"regexp"
	"strings"

	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/levels"
	"github.com/btutor/content-grader/pkg/textstat"
)

var listMarkerRE = regexp.MustCompile(`[1-9]\.|•|\*|\-`)

// Calculator computes QualityMetrics against a fixed set of lookup tables.
// Safe for concurrent use.
type Calculator struct {
	tables *levels.Tables
}

// NewCalculator returns a Calculator reading from tables.
func NewCalculator(tables *levels.Tables) *Calculator {
	return &Calculator{tables: tables}
}

// ComputeMetrics dispatches on the content language. Unrecognized languages
// get fixed mid-range constants; no analysis is attempted.
func (c *Calculator) ComputeMetrics(content *models.Content) models.QualityMetrics {
	switch content.Language {
	case models.LanguageEnglish:
		return c.englishMetrics(content)
	case models.LanguageJapanese:
		return c.japaneseMetrics(content)
	default:
		return GenericMetrics()
	}
}

// GenericMetrics is the fixed metric set for content in an unknown language.
func GenericMetrics() models.QualityMetrics {
	return models.QualityMetrics{
		VocabularyAppropriateness: 0.5,
		GrammarComplexity:         0.5,
		ContentStructure:          0.6,
		EducationalValue:          0.6,
		Authenticity:              0.5,
		CulturalRelevance:         0.5,
		Readability:               0.6,
		EngagementFactor:          0.5,
	}
}

func (c *Calculator) englishMetrics(content *models.Content) models.QualityMetrics {
	text := content.Text()
	return models.QualityMetrics{
		VocabularyAppropriateness: c.englishVocabularyAppropriateness(text, content.DifficultyLevel),
		GrammarComplexity:         c.GrammarComplexity(text, models.LanguageEnglish),
		ContentStructure:          c.contentStructure(content),
		EducationalValue:          c.educationalValue(content),
		Authenticity:              englishAuthenticity,
		CulturalRelevance:         culturalRelevance,
		Readability:               englishReadability(text),
		EngagementFactor:          c.engagementFactor(content),
	}
}

func (c *Calculator) japaneseMetrics(content *models.Content) models.QualityMetrics {
	text := content.Text()
	return models.QualityMetrics{
		VocabularyAppropriateness: c.japaneseVocabularyAppropriateness(text, content.DifficultyLevel),
		GrammarComplexity:         c.GrammarComplexity(text, models.LanguageJapanese),
		ContentStructure:          c.contentStructure(content),
		EducationalValue:          c.educationalValue(content),
		Authenticity:              japaneseAuthenticity,
		CulturalRelevance:         culturalRelevance,
		Readability:               japaneseReadability(text),
		EngagementFactor:          c.engagementFactor(content),
	}
}

// Authenticity and cultural relevance are deliberate constant placeholders:
// the design calls for real naturalness analysis here eventually, and until
// then the constants keep the metric present in every downstream weighting
// rather than silently dropped.
const (
	englishAuthenticity  = 0.8
	japaneseAuthenticity = 0.8
	culturalRelevance    = 0.7
)

// GrammarComplexity accumulates weight×min(occurrences, 3) over the
// language's weighted pattern set, adds a capped sentence-length
// contribution, and normalizes by the count of distinct patterns matched.
// Text matching no pattern at all gets a fixed 0.1 floor.
func (c *Calculator) GrammarComplexity(text string, lang models.Language) float64 {
	patterns := c.tables.GrammarPatterns(lang)

	matched := 0
	total := 0.0
	for _, p := range patterns {
		occurrences := len(p.RE.FindAllString(text, -1))
		if occurrences == 0 {
			continue
		}
		matched++
		if occurrences > 3 {
			occurrences = 3
		}
		total += p.Weight * float64(occurrences)
	}

	switch lang {
	case models.LanguageEnglish:
		words := textstat.EnglishWords(text)
		sentences := textstat.EnglishSentences(text)
		if len(sentences) > 0 {
			avg := textstat.AvgSentenceLength(len(words), len(sentences))
			contribution := avg / 20.0
			if contribution > 0.5 {
				contribution = 0.5
			}
			total += contribution
		}
	case models.LanguageJapanese:
		if counts := textstat.CountJapanese(text); counts.Total() > 0 {
			total += counts.KanjiRatio() * 0.3
		}
	}

	if matched == 0 {
		return 0.1
	}

	divisor := float64(matched) * normalizationFactor(lang)
	if divisor < 1 {
		divisor = 1
	}
	return textstat.Clamp(total/divisor, 0, 1)
}

// Japanese patterns are shorter and denser, so normalization is gentler there.
func normalizationFactor(lang models.Language) float64 {
	if lang == models.LanguageJapanese {
		return 0.4
	}
	return 0.5
}

// contentStructure is an additive score over independent structural signals,
// capped at 1.0.
func (c *Calculator) contentStructure(content *models.Content) float64 {
	score := 0.0

	if len([]rune(strings.TrimSpace(content.Title))) > 5 {
		score += 0.2
	}

	bodyLen := len(content.Body)
	switch {
	case bodyLen >= 100 && bodyLen <= 2000:
		score += 0.3
	case bodyLen > 50:
		score += 0.2
	}

	if len(textstat.Sentences(content.Body)) >= 3 {
		score += 0.2
	}

	if len(strings.Split(content.Body, "\n\n")) > 1 {
		score += 0.1
	}

	if listMarkerRE.MatchString(content.Body) {
		score += 0.1
	}

	lowerBody := strings.ToLower(content.Body)
	for _, marker := range c.tables.StructureMarkers() {
		if strings.Contains(lowerBody, marker) {
			score += 0.1
			break
		}
	}

	return textstat.Clamp(score, 0, 1)
}

// educationalValue combines keyword density, explanatory-marker density and a
// fixed content-type bonus.
func (c *Calculator) educationalValue(content *models.Content) float64 {
	score := 0.0
	text := strings.ToLower(content.Text())

	keywords := 0
	for _, kw := range c.tables.EducationalKeywords() {
		if strings.Contains(text, kw) {
			keywords++
		}
	}
	score += min(0.4, float64(keywords)/10.0)

	explanations := 0
	for _, marker := range c.tables.ExplanatoryMarkers() {
		if strings.Contains(text, marker) {
			explanations++
		}
	}
	score += min(0.3, float64(explanations)/5.0)

	score += contentTypeBonus(content.ContentType)

	return textstat.Clamp(score, 0, 1)
}

func contentTypeBonus(ct models.ContentType) float64 {
	switch ct {
	case models.ContentTypeExercise:
		return 0.3
	case models.ContentTypeArticle, models.ContentTypeDialogue:
		return 0.2
	case models.ContentTypeNews, models.ContentTypeCultural:
		return 0.1
	default:
		return 0
	}
}

// englishReadability penalizes average sentence length beyond 10 words and
// average word length beyond 4 characters. Empty text scores 0.
func englishReadability(text string) float64 {
	sentences := textstat.EnglishSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	words := textstat.EnglishWords(text)
	if len(words) == 0 {
		return 0
	}

	avgSentence := textstat.AvgSentenceLength(len(words), len(sentences))
	avgWord := textstat.AvgWordLength(words)

	sentenceScore := textstat.Clamp(1.0-(avgSentence-10)/20, 0, 1)
	wordScore := textstat.Clamp(1.0-(avgWord-4)/6, 0, 1)

	return (sentenceScore + wordScore) / 2
}

// japaneseReadability rewards hiragana share and kanji usage close to the
// optimal midpoint ratio.
func japaneseReadability(text string) float64 {
	counts := textstat.CountJapanese(text)
	if counts.Total() == 0 {
		return 0
	}

	const optimalKanjiRatio = 0.3
	kanjiDiff := counts.KanjiRatio() - optimalKanjiRatio
	if kanjiDiff < 0 {
		kanjiDiff = -kanjiDiff
	}

	return textstat.Clamp(counts.HiraganaRatio()*0.6+(1.0-kanjiDiff)*0.4, 0, 1)
}

// engagementFactor scores interactive and narrative cues plus punctuation
// variety.
func (c *Calculator) engagementFactor(content *models.Content) float64 {
	score := 0.0
	text := strings.ToLower(content.Text())

	engaging := 0
	for _, el := range c.tables.EngagingElements() {
		if strings.Contains(text, el) {
			engaging++
		}
	}
	score += min(0.4, float64(engaging)/5.0)

	interactive := 0
	for _, phrase := range c.tables.InteractivePhrases() {
		if strings.Contains(text, phrase) {
			interactive++
		}
	}
	score += min(0.3, float64(interactive)/3.0)

	if strings.ContainsAny(content.Body, "?？") {
		score += 0.15
	}
	if strings.ContainsAny(content.Body, "!！") {
		score += 0.15
	}

	return textstat.Clamp(score, 0, 1)
}
