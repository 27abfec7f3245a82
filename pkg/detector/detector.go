// Package detector decides which language family a piece of content should
// be graded under. A statistical model does the heavy lifting; a cheap
// script scan short-circuits the obvious Japanese case first since kana is
// unambiguous.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/textstat"
)

// Texts shorter than this carry too little signal to classify.
const minTextRunes = 5

// Detector classifies content text as English, Japanese, or other.
type Detector struct {
	model lingua.LanguageDetector
}

// New builds a Detector. Construction loads the language models, so build
// one and share it.
func New() *Detector {
	model := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Japanese).
		WithMinimumRelativeDistance(0.1).
		Build()
	return &Detector{model: model}
}

// Detect returns the language of text, or LanguageOther when the text is too
// short or the model cannot commit to a language.
func (d *Detector) Detect(text string) models.Language {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minTextRunes {
		return models.LanguageOther
	}

	// Kana never appears in English text.
	counts := textstat.CountJapanese(text)
	if counts.Hiragana > 0 || counts.Katakana > 0 {
		return models.LanguageJapanese
	}

	lang, ok := d.model.DetectLanguageOf(text)
	if !ok {
		return models.LanguageOther
	}
	switch lang {
	case lingua.English:
		return models.LanguageEnglish
	case lingua.Japanese:
		return models.LanguageJapanese
	default:
		return models.LanguageOther
	}
}

// Confidence reports how strongly text looks like lang, in [0, 1].
func (d *Detector) Confidence(text string, lang models.Language) float64 {
	var target lingua.Language
	switch lang {
	case models.LanguageEnglish:
		target = lingua.English
	case models.LanguageJapanese:
		target = lingua.Japanese
	default:
		return 0
	}
	return d.model.ComputeLanguageConfidence(text, target)
}

// Resolve fills in content.Language when the source did not declare one.
func (d *Detector) Resolve(content *models.Content) models.Language {
	if content.Language != "" {
		return content.Language
	}
	return d.Detect(content.Text())
}
