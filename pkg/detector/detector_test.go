package detector

import (
	"testing"

	"github.com/btutor/content-grader/models"
)

// Building a Detector loads the statistical language models, so the tests
// share one.
var shared = New()

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Language
	}{
		{"english prose", "The students went to school early in the morning to prepare for the exam.", models.LanguageEnglish},
		{"japanese with kana", "私は毎日学校に行きます。", models.LanguageJapanese},
		{"katakana only", "コンピュータ システム", models.LanguageJapanese},
		{"empty", "", models.LanguageOther},
		{"too short", "hi", models.LanguageOther},
		{"whitespace only", "   \n\t  ", models.LanguageOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog near the riverbank."

	en := shared.Confidence(text, models.LanguageEnglish)
	ja := shared.Confidence(text, models.LanguageJapanese)

	if en <= ja {
		t.Errorf("english confidence %v should exceed japanese %v for english prose", en, ja)
	}
	if en < 0 || en > 1 {
		t.Errorf("confidence %v out of range", en)
	}
	if got := shared.Confidence(text, models.LanguageOther); got != 0 {
		t.Errorf("Confidence(other) = %v, want 0", got)
	}
}

func TestResolve(t *testing.T) {
	t.Run("declared language wins", func(t *testing.T) {
		content := &models.Content{Body: "это русский текст", Language: models.LanguageJapanese}
		if got := shared.Resolve(content); got != models.LanguageJapanese {
			t.Errorf("Resolve = %q, want the declared language", got)
		}
	})

	t.Run("detects when undeclared", func(t *testing.T) {
		content := &models.Content{Body: "今日はとても良い天気ですね。"}
		if got := shared.Resolve(content); got != models.LanguageJapanese {
			t.Errorf("Resolve = %q, want japanese", got)
		}
	})
}
