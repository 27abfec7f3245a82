package levels

import (
	"math"
	"testing"

	"github.com/btutor/content-grader/models"
)

func TestForLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang models.Language
		want []string
	}{
		{"english", models.LanguageEnglish, CETLevels},
		{"japanese", models.LanguageJapanese, JLPTLevels},
		{"other", models.LanguageOther, []string{GenericLevel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForLanguage(tt.lang)
			if len(got) != len(tt.want) {
				t.Fatalf("ForLanguage(%q) = %v, want %v", tt.lang, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ForLanguage(%q)[%d] = %q, want %q", tt.lang, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFamilyMembership(t *testing.T) {
	if !IsCET("CET-4") || !IsCET("CET-6") {
		t.Error("IsCET should accept CET-4 and CET-6")
	}
	if IsCET("N3") || IsCET("CET-9") || IsCET("") {
		t.Error("IsCET should reject non-CET levels")
	}
	if !IsJLPT("N5") || !IsJLPT("N1") {
		t.Error("IsJLPT should accept N5 and N1")
	}
	if IsJLPT("CET-4") || IsJLPT("N0") {
		t.Error("IsJLPT should reject non-JLPT levels")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		family   []string
		from, to string
		step     float64
		want     float64
	}{
		{"same level", CETLevels, "CET-4", "CET-4", 0.3, 1.0},
		{"adjacent cet", CETLevels, "CET-4", "CET-5", 0.3, 0.7},
		{"two apart cet", CETLevels, "CET-4", "CET-6", 0.3, 0.4},
		{"adjacent jlpt", JLPTLevels, "N5", "N4", 0.2, 0.8},
		{"far jlpt", JLPTLevels, "N5", "N1", 0.2, 0.2},
		{"unknown target", CETLevels, "CET-4", "XYZ", 0.3, 0.5},
		{"unknown source", CETLevels, "XYZ", "CET-4", 0.3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.family, tt.from, tt.to, tt.step)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTablesCriteriaFallbacks(t *testing.T) {
	tables := NewTables()

	known := tables.CET("CET-6")
	if known.TargetWordLength != 6.5 {
		t.Errorf("CET-6 target word length = %v, want 6.5", known.TargetWordLength)
	}

	unknown := tables.CET("CET-99")
	fallback := tables.CET("CET-5")
	if unknown.TargetWordLength != fallback.TargetWordLength {
		t.Errorf("unknown CET level should use the CET-5 targets, got %+v", unknown)
	}
	if unknown.WordLength != DefaultCETWordLength {
		t.Errorf("unknown CET level word-length band = %+v, want %+v", unknown.WordLength, DefaultCETWordLength)
	}

	if got := tables.JLPT("bogus"); got != tables.JLPT("N3") {
		t.Errorf("unknown JLPT level should use the N3 criteria, got %+v", got)
	}
}

func TestTablesLevelVocabulary(t *testing.T) {
	tables := NewTables()

	set, ok := tables.LevelVocabulary(models.LanguageEnglish, "CET-6")
	if !ok || len(set) == 0 {
		t.Fatal("expected a CET-6 vocabulary set")
	}
	if _, in := set["sophisticated"]; !in {
		t.Error("CET-6 vocabulary should contain sophisticated")
	}

	set, ok = tables.LevelVocabulary(models.LanguageJapanese, "N3")
	if !ok || len(set) == 0 {
		t.Fatal("expected an N3 vocabulary set")
	}
	if _, in := set["努力"]; !in {
		t.Error("N3 vocabulary should contain 努力")
	}

	if _, ok := tables.LevelVocabulary(models.LanguageEnglish, "N3"); ok {
		t.Error("N3 is not an English level, want no set")
	}
	if _, ok := tables.LevelVocabulary(models.LanguageOther, "intermediate"); ok {
		t.Error("generic language has no vocabulary sets")
	}
}

func TestTablesWordFrequency(t *testing.T) {
	tables := NewTables()

	if got := tables.WordFrequency(models.LanguageEnglish, "the"); got != 1.0 {
		t.Errorf("frequency of 'the' = %v, want 1.0", got)
	}
	if got := tables.WordFrequency(models.LanguageEnglish, "zyzzyva"); got != 0 {
		t.Errorf("frequency of unseen word = %v, want 0", got)
	}
	if got := tables.WordFrequency(models.LanguageJapanese, "の"); got != 1.0 {
		t.Errorf("frequency of の = %v, want 1.0", got)
	}
}

func TestGrammarPatternsCompile(t *testing.T) {
	tables := NewTables()
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageJapanese} {
		patterns := tables.GrammarPatterns(lang)
		if len(patterns) == 0 {
			t.Fatalf("no grammar patterns for %s", lang)
		}
		for _, p := range patterns {
			if p.RE == nil {
				t.Errorf("pattern %s has no compiled expression", p.Name)
			}
			if p.Weight <= 0 || p.Weight > 1 {
				t.Errorf("pattern %s weight = %v, want in (0,1]", p.Name, p.Weight)
			}
		}
	}
}
