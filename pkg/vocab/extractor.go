// Package vocab pulls teachable vocabulary items out of learning content.
// Extraction runs an ordered cascade of structural patterns, from the most
// explicit glossary style down to loose "word - meaning" notation, and falls
// back to the level word lists when the text carries no glossary markup at
// all.
package vocab

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/levels"
	"github.com/btutor/content-grader/pkg/textstat"
)

// maxItems caps what a single piece of content may contribute.
const maxItems = 10

// fallbackLimit caps the word-list fallback, which has no structural signal
// to rank matches by.
const fallbackLimit = 5

// Glossary-style English patterns, tried in order. The first pattern that
// yields any item wins the cascade.
var (
	// "The word 'sophisticated' means extremely complex and refined.
	//  For example: She used sophisticated methods. Pronunciation: /x/"
	enWordMeansRE = regexp.MustCompile(`(?im)(?:The word|Another word)\s*['"]([a-zA-Z]{3,})['"](?:\s*(?:means|which means|is defined as|refers to)\s*([^.!?]+)[.!?])?\s*(?:(?:For example|Example|e\.g\.)[:\s]*([^.!?]+)[.!?])?\s*(?:Pronunciation[:\s]*(/[^/\n]+/|\[[^\]\n]+\]))?`)

	// "'sophisticated' - extremely complex (She used sophisticated methods)"
	enDashRE = regexp.MustCompile(`(?i)['"]([a-zA-Z]{3,})['"](?:\s*[-–—]\s*([^(.!?]+))?\s*\(([^)]+)\)?`)

	// "sophisticated: extremely complex. Example: ..."
	enColonRE = regexp.MustCompile(`(?i)\b([a-zA-Z]{4,})\s*:\s*([^.!?]+)[.!?]?\s*(?:Example[:\s]*([^.!?]+))?`)
)

// Japanese glossary patterns, same cascade discipline.
var (
	// 「努力」（どりょく）という言葉は「目標に向かって頑張ること」という意味です。例文：...
	jaQuotedRE = regexp.MustCompile(`「([^」]+)」(?:（([^）]+)）)?(?:という言葉)?は「([^」]+)」という意味です。?(?:例文?[：:]([^。]+)。?)?`)

	// 努力（どりょく）は「目標に向かって頑張ること」という意味です。例：...
	jaPlainRE = regexp.MustCompile(`([^\s（]+)(?:（([^）]+)）)?は「([^」]+)」という意味です。?(?:例[：:]([^。]+)。?)?`)

	// 努力 - 目標に向かって頑張ること (彼は努力して日本語を覚えました)
	jaDashRE = regexp.MustCompile(`([^\s\-]+)\s*[-–—]\s*([^(]+)\s*\(([^)]+)\)`)
)

var japaneseCharRE = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]`)

// Captured fragments that look like words but are glossary scaffolding.
var englishMetaWords = map[string]bool{
	"means": true, "example": true, "pronunciation": true,
	"definition": true, "sentence": true,
}

var japaneseMetaWords = map[string]bool{
	"という意味です": true, "という言葉": true, "という意味": true,
	"です": true, "ます": true,
}

// Extractor mines vocabulary items from content text.
type Extractor struct {
	tables *levels.Tables
}

// New returns an Extractor reading from tables.
func New(tables *levels.Tables) *Extractor {
	return &Extractor{tables: tables}
}

// Extract returns up to ten vocabulary items found in content, tagged with
// the content's claimed level, language, and source URL. Items whose word
// falls outside the claimed level's word list are dropped when that list
// exists. Content in an unrecognized language yields nothing.
func (e *Extractor) Extract(content *models.Content) []models.VocabularyItem {
	switch content.Language {
	case models.LanguageEnglish:
		return e.extractEnglish(content)
	case models.LanguageJapanese:
		return e.extractJapanese(content)
	default:
		return nil
	}
}

func (e *Extractor) extractEnglish(content *models.Content) []models.VocabularyItem {
	text := content.Text()

	var items []models.VocabularyItem
	for _, m := range enWordMeansRE.FindAllStringSubmatch(text, -1) {
		if item, ok := englishItem(content, m[1], m[2], m[3], m[4], 3); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		for _, m := range enDashRE.FindAllStringSubmatch(text, -1) {
			if item, ok := englishItem(content, m[1], m[2], m[3], "", 3); ok {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		for _, m := range enColonRE.FindAllStringSubmatch(text, -1) {
			if item, ok := englishItem(content, m[1], m[2], m[3], "", 4); ok {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		items = e.englishFallback(content, text)
	}

	items = e.FilterByLevel(items, content.DifficultyLevel)
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

// englishItem validates one cascade match and builds the item from it.
func englishItem(content *models.Content, word, definition, example, reading string, minLen int) (models.VocabularyItem, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	definition = strings.TrimSpace(definition)
	if len(word) < minLen || englishMetaWords[word] || len(definition) < 5 {
		return models.VocabularyItem{}, false
	}
	return models.VocabularyItem{
		Word:            word,
		Reading:         strings.TrimSpace(reading),
		Definition:      definition,
		ExampleSentence: strings.TrimSpace(example),
		Level:           content.DifficultyLevel,
		Language:        models.LanguageEnglish,
		SourceURL:       content.SourceURL,
	}, true
}

// englishFallback mines the level word list when no glossary structure was
// found: any listed word appearing in the text becomes an item, with
// definition and example recovered from its surrounding sentences.
func (e *Extractor) englishFallback(content *models.Content, text string) []models.VocabularyItem {
	target, ok := e.tables.LevelVocabulary(models.LanguageEnglish, content.DifficultyLevel)
	if !ok || len(target) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var found []string
	for _, w := range textstat.EnglishWords(text) {
		if _, in := target[w]; in && len(w) >= 3 && !textstat.IsStopword(w) && !seen[w] {
			seen[w] = true
			found = append(found, w)
		}
	}
	e.rankByRarity(models.LanguageEnglish, found)
	if len(found) > fallbackLimit {
		found = found[:fallbackLimit]
	}

	items := make([]models.VocabularyItem, 0, len(found))
	for _, word := range found {
		items = append(items, models.VocabularyItem{
			Word:            word,
			Definition:      englishDefinitionFromContext(word, text),
			ExampleSentence: englishExampleFromContext(word, text),
			Level:           content.DifficultyLevel,
			Language:        models.LanguageEnglish,
			SourceURL:       content.SourceURL,
		})
	}
	return items
}

func (e *Extractor) extractJapanese(content *models.Content) []models.VocabularyItem {
	text := content.Text()

	var items []models.VocabularyItem
	for _, m := range jaQuotedRE.FindAllStringSubmatch(text, -1) {
		if item, ok := japaneseItem(content, m[1], m[3], m[4], m[2]); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		for _, m := range jaPlainRE.FindAllStringSubmatch(text, -1) {
			if item, ok := japaneseItem(content, m[1], m[3], m[4], m[2]); ok {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		for _, m := range jaDashRE.FindAllStringSubmatch(text, -1) {
			if item, ok := japaneseItem(content, m[1], m[2], m[3], ""); ok {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		items = e.japaneseFallback(content, text)
	}

	items = e.FilterByLevel(items, content.DifficultyLevel)
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

func japaneseItem(content *models.Content, word, definition, example, reading string) (models.VocabularyItem, bool) {
	word = strings.TrimSpace(word)
	definition = strings.TrimSpace(definition)
	if word == "" || !japaneseCharRE.MatchString(word) || japaneseMetaWords[word] {
		return models.VocabularyItem{}, false
	}
	if utf8.RuneCountInString(definition) < 2 {
		return models.VocabularyItem{}, false
	}
	return models.VocabularyItem{
		Word:            word,
		Reading:         strings.TrimSpace(reading),
		Definition:      definition,
		ExampleSentence: strings.TrimSpace(example),
		Level:           content.DifficultyLevel,
		Language:        models.LanguageJapanese,
		SourceURL:       content.SourceURL,
	}, true
}

func (e *Extractor) japaneseFallback(content *models.Content, text string) []models.VocabularyItem {
	target, ok := e.tables.LevelVocabulary(models.LanguageJapanese, content.DifficultyLevel)
	if !ok || len(target) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var found []string
	for _, w := range textstat.JapaneseWords(text) {
		if _, in := target[w]; in && utf8.RuneCountInString(w) >= 2 &&
			!textstat.IsStopword(w) && !seen[w] {
			seen[w] = true
			found = append(found, w)
		}
	}
	e.rankByRarity(models.LanguageJapanese, found)
	if len(found) > fallbackLimit {
		found = found[:fallbackLimit]
	}

	items := make([]models.VocabularyItem, 0, len(found))
	for _, word := range found {
		items = append(items, models.VocabularyItem{
			Word:            word,
			Reading:         japaneseReadingFromContext(word, text),
			Definition:      japaneseDefinitionFromContext(word, text),
			ExampleSentence: japaneseExampleFromContext(word, text),
			Level:           content.DifficultyLevel,
			Language:        models.LanguageJapanese,
			SourceURL:       content.SourceURL,
		})
	}
	return items
}

// rankByRarity orders fallback candidates rarest first, alphabetical on
// ties, so extraction output is stable across runs.
func (e *Extractor) rankByRarity(lang models.Language, words []string) {
	sort.Slice(words, func(i, j int) bool {
		fi := e.tables.WordFrequency(lang, words[i])
		fj := e.tables.WordFrequency(lang, words[j])
		if fi != fj {
			return fi < fj
		}
		return words[i] < words[j]
	})
}
