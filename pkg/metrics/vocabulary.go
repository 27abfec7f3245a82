package metrics

import (
	"strings"

	"github.com/btutor/content-grader/pkg/textstat"
)

// englishVocabularyAppropriateness compares the text's average word length
// against the claimed level's target band. Inside the band scores 1.0;
// outside, the score decays linearly with distance and floors at 0.3.
// Level-diagnostic vocabulary adds capped boosts. No tokens scores 0.
func (c *Calculator) englishVocabularyAppropriateness(text, level string) float64 {
	words := textstat.EnglishWords(text)
	if len(words) == 0 {
		return 0
	}

	avgLength := textstat.AvgWordLength(words)
	band := c.tables.CET(level).WordLength

	var appropriateness float64
	switch {
	case band.Contains(avgLength):
		appropriateness = 1.0
	case avgLength < band.Min:
		// Too simple for the level.
		appropriateness = max(0.3, 1.0-(band.Min-avgLength)/2.0)
	default:
		// Too complex for the level.
		appropriateness = max(0.3, 1.0-(avgLength-band.Max)/3.0)
	}

	switch level {
	case "CET-6":
		if countMembers(words, c.tables.AdvancedWords()) > 0 {
			appropriateness = min(1.0, appropriateness+0.3)
		}
	case "CET-4":
		if countMembers(words, c.tables.SimpleWords()) > 0 {
			appropriateness = min(1.0, appropriateness+0.2)
		}
	}

	educational := countMembers(words, c.tables.EducationalWords())
	bonus := min(0.2, float64(educational)/float64(len(words))*2.0)

	return textstat.Clamp(appropriateness+bonus, 0, 1)
}

// japaneseVocabularyAppropriateness compares kanji and hiragana ratios
// against the claimed level's expected character distribution. No Japanese
// characters scores 0.
func (c *Calculator) japaneseVocabularyAppropriateness(text, level string) float64 {
	if len(textstat.JapaneseRuns(text)) == 0 {
		return 0
	}
	counts := textstat.CountJapanese(text)
	if counts.Total() == 0 {
		return 0
	}

	expected := c.tables.JLPT(level)

	kanjiDiff := abs(counts.KanjiRatio() - expected.KanjiRatio)
	hiraganaDiff := abs(counts.HiraganaRatio() - expected.HiraganaRatio)

	kanjiScore := max(0, 1.0-kanjiDiff*3.0)
	hiraganaScore := max(0, 1.0-hiraganaDiff*2.0)

	appropriateness := kanjiScore*0.6 + hiraganaScore*0.4

	educational := 0
	for _, marker := range c.tables.EducationalJapanese() {
		if strings.Contains(text, marker) {
			educational++
		}
	}
	bonus := min(0.2, float64(educational)/10.0)

	return textstat.Clamp(appropriateness+bonus, 0, 1)
}

func countMembers(words []string, set map[string]struct{}) int {
	n := 0
	for _, w := range words {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
