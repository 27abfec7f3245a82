package vocab

import (
	"fmt"
	"strings"
	"testing"

	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/levels"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(levels.NewTables())
}

func TestExtractEnglishGlossary(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body: "The word 'sophisticated' means extremely complex and refined. " +
			"For example: She used sophisticated methods. Pronunciation: /sofisticated/",
		Language:        models.LanguageEnglish,
		DifficultyLevel: "CET-6",
		SourceURL:       "https://example.com/lesson",
	})

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	item := items[0]
	if item.Word != "sophisticated" {
		t.Errorf("word = %q, want sophisticated", item.Word)
	}
	if item.Definition != "extremely complex and refined" {
		t.Errorf("definition = %q", item.Definition)
	}
	if item.ExampleSentence != "She used sophisticated methods" {
		t.Errorf("example = %q", item.ExampleSentence)
	}
	if item.Reading != "/sofisticated/" {
		t.Errorf("reading = %q", item.Reading)
	}
	if item.Level != "CET-6" || item.Language != models.LanguageEnglish {
		t.Errorf("tagging = %q/%q", item.Level, item.Language)
	}
	if item.SourceURL != "https://example.com/lesson" {
		t.Errorf("source = %q", item.SourceURL)
	}
}

func TestExtractEnglishColonCascade(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:     "resilient: able to recover quickly from difficulties. Example: The resilient team rebounded.",
		Language: models.LanguageEnglish,
	})

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	if items[0].Word != "resilient" {
		t.Errorf("word = %q, want resilient", items[0].Word)
	}
	if items[0].Definition != "able to recover quickly from difficulties" {
		t.Errorf("definition = %q", items[0].Definition)
	}
	if items[0].ExampleSentence != "The resilient team rebounded" {
		t.Errorf("example = %q", items[0].ExampleSentence)
	}
}

func TestExtractEnglishRejectsShortDefinition(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:            "The word 'cat' means pet.",
		Language:        models.LanguageEnglish,
		DifficultyLevel: "CET-4",
	})

	if len(items) != 0 {
		t.Errorf("three-character definition should not produce items, got %+v", items)
	}
}

func TestExtractEnglishCap(t *testing.T) {
	words := []string{
		"ambitious", "benevolent", "candid", "diligent", "eloquent", "frugal",
		"gregarious", "humble", "intricate", "jovial", "keen", "luminous",
	}
	var b strings.Builder
	for i, w := range words {
		fmt.Fprintf(&b, "%s: definition number %d for this entry.\n", w, i+1)
	}

	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:     b.String(),
		Language: models.LanguageEnglish,
	})

	if len(items) != 10 {
		t.Fatalf("got %d items, want the cap of 10", len(items))
	}
	if items[0].Word != "ambitious" {
		t.Errorf("first item = %q, want text order preserved", items[0].Word)
	}
}

func TestExtractEnglishFallback(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:            "Students achieve academic success when they adapt and accept advice.",
		Language:        models.LanguageEnglish,
		DifficultyLevel: "CET-4",
	})

	want := []string{"academic", "accept", "achieve", "adapt", "advice"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i, w := range want {
		if items[i].Word != w {
			t.Errorf("items[%d].Word = %q, want %q (rarity order)", i, items[i].Word, w)
		}
	}
	if !strings.Contains(items[0].ExampleSentence, "academic") {
		t.Errorf("recovered example %q should contain the word", items[0].ExampleSentence)
	}
}

func TestExtractDropsOffLevelWords(t *testing.T) {
	e := newTestExtractor(t)

	content := &models.Content{
		Body:            "resilient: able to recover quickly from difficulties. Example: The resilient team rebounded.",
		Language:        models.LanguageEnglish,
		DifficultyLevel: "CET-6",
	}
	if items := e.Extract(content); len(items) != 0 {
		t.Errorf("word outside the CET-6 list should be dropped, got %+v", items)
	}

	// Without a claimed level there is no list to check against.
	content.DifficultyLevel = ""
	if items := e.Extract(content); len(items) != 1 {
		t.Errorf("no claimed level should pass the item through, got %+v", items)
	}
}

func TestExtractJapaneseGlossary(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:            "「努力」（どりょく）という言葉は「目標に向かって頑張ること」という意味です。例文：彼は努力して日本語を覚えました。",
		Language:        models.LanguageJapanese,
		DifficultyLevel: "N3",
	})

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	item := items[0]
	if item.Word != "努力" {
		t.Errorf("word = %q, want 努力", item.Word)
	}
	if item.Reading != "どりょく" {
		t.Errorf("reading = %q, want どりょく", item.Reading)
	}
	if item.Definition != "目標に向かって頑張ること" {
		t.Errorf("definition = %q", item.Definition)
	}
	if item.ExampleSentence != "彼は努力して日本語を覚えました" {
		t.Errorf("example = %q", item.ExampleSentence)
	}
}

func TestExtractJapaneseDashNotation(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:            "努力 - 目標に向かって頑張ること (彼は努力して日本語を覚えました)",
		Language:        models.LanguageJapanese,
		DifficultyLevel: "N3",
	})

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	if items[0].Word != "努力" || items[0].Definition == "" || items[0].ExampleSentence == "" {
		t.Errorf("unexpected item %+v", items[0])
	}
}

func TestExtractJapaneseFallback(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:            "「学校」と「友達」について話します。",
		Language:        models.LanguageJapanese,
		DifficultyLevel: "N5",
	})

	want := []string{"友達", "学校"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i, w := range want {
		if items[i].Word != w {
			t.Errorf("items[%d].Word = %q, want %q (rarity order)", i, items[i].Word, w)
		}
	}
}

func TestExtractUnknownLanguage(t *testing.T) {
	e := newTestExtractor(t)
	items := e.Extract(&models.Content{
		Body:     "Dieser Text ist weder Englisch noch Japanisch.",
		Language: models.LanguageOther,
	})

	if items != nil {
		t.Errorf("unknown language should yield nothing, got %+v", items)
	}
}

func TestFilterByLevel(t *testing.T) {
	e := newTestExtractor(t)
	items := []models.VocabularyItem{
		{Word: "sophisticated", Language: models.LanguageEnglish},
		{Word: "achieve", Language: models.LanguageEnglish},
	}

	t.Run("keeps only listed words", func(t *testing.T) {
		kept := e.FilterByLevel(items, "CET-6")
		if len(kept) != 1 || kept[0].Word != "sophisticated" {
			t.Errorf("FilterByLevel(CET-6) = %+v", kept)
		}
	})

	t.Run("missing list passes everything", func(t *testing.T) {
		kept := e.FilterByLevel(items, "CET-99")
		if len(kept) != len(items) {
			t.Errorf("FilterByLevel without a list kept %d of %d", len(kept), len(items))
		}
	})

	t.Run("japanese membership", func(t *testing.T) {
		ja := []models.VocabularyItem{{Word: "努力", Language: models.LanguageJapanese}}
		if kept := e.FilterByLevel(ja, "N3"); len(kept) != 1 {
			t.Errorf("努力 should pass N3, got %+v", kept)
		}
		if kept := e.FilterByLevel(ja, "N5"); len(kept) != 0 {
			t.Errorf("努力 should not pass N5, got %+v", kept)
		}
	})
}
