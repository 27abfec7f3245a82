package vocab

import (
	"strings"

	"github.com/btutor/content-grader/models"
)

// FilterByLevel drops items whose word is missing from the word list of the
// given level. When no list exists for the item's language and level the
// item passes, since there is nothing to check it against.
func (e *Extractor) FilterByLevel(items []models.VocabularyItem, level string) []models.VocabularyItem {
	kept := make([]models.VocabularyItem, 0, len(items))
	for _, item := range items {
		if e.levelAppropriate(item, level) {
			kept = append(kept, item)
		}
	}
	return kept
}

func (e *Extractor) levelAppropriate(item models.VocabularyItem, level string) bool {
	target, ok := e.tables.LevelVocabulary(item.Language, level)
	if !ok || len(target) == 0 {
		return true
	}
	word := item.Word
	if item.Language == models.LanguageEnglish {
		word = strings.ToLower(word)
	}
	_, in := target[word]
	return in
}
