// Package levels holds the immutable reference data the grading core reads:
// level taxonomies, per-level targets, grammar pattern weights, keyword and
// vocabulary lists, and word-frequency data. Tables are built once and safe
// to share across goroutines.
package levels

import "github.com/btutor/content-grader/models"

// CETLevels is the English taxonomy, ordered easiest to hardest.
var CETLevels = []string{"CET-4", "CET-5", "CET-6"}

// JLPTLevels is the Japanese taxonomy, ordered easiest to hardest.
var JLPTLevels = []string{"N5", "N4", "N3", "N2", "N1"}

// GenericLevel is assigned to content in an unrecognized language.
const GenericLevel = "intermediate"

// IsCET reports whether level belongs to the English family.
func IsCET(level string) bool {
	return indexOf(CETLevels, level) >= 0
}

// IsJLPT reports whether level belongs to the Japanese family.
func IsJLPT(level string) bool {
	return indexOf(JLPTLevels, level) >= 0
}

// ForLanguage returns the level family for a language. Unknown languages get
// the single-entry generic family, mirroring how grading treats them.
func ForLanguage(lang models.Language) []string {
	switch lang {
	case models.LanguageEnglish:
		return CETLevels
	case models.LanguageJapanese:
		return JLPTLevels
	default:
		return []string{GenericLevel}
	}
}

// Distance returns the 0-1 appropriateness decay between two levels of the
// same family: 0.3 per step for CET, 0.2 per step for JLPT. Unknown levels
// yield the 0.5 default.
func Distance(family []string, from, to string, step float64) float64 {
	fi, ti := indexOf(family, from), indexOf(family, to)
	if fi < 0 || ti < 0 {
		return 0.5
	}
	d := fi - ti
	if d < 0 {
		d = -d
	}
	score := 1.0 - float64(d)*step
	if score < 0 {
		return 0
	}
	return score
}

func indexOf(family []string, level string) int {
	for i, l := range family {
		if l == level {
			return i
		}
	}
	return -1
}
