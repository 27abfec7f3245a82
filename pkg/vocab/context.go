package vocab

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Context recovery for fallback items: the word came from a level list, so
// any definition, example, or reading has to be fished out of the prose
// around it. All of these return "" when nothing trustworthy is found.

func englishDefinitionFromContext(word, text string) string {
	quoted := regexp.QuoteMeta(word)
	patterns := []string{
		`(?i)\b` + quoted + `\b\s*(?:means|is defined as|refers to)\s*([^.!?]+)`,
		`(?i)(?:The word|word)\s*['"]?` + quoted + `['"]?\s*(?:means|is defined as)\s*([^.!?]+)`,
		`(?i)` + quoted + `\s*[-–—]\s*([^.!?]+)`,
	}
	for _, p := range patterns {
		m := regexp.MustCompile(p).FindStringSubmatch(text)
		if m == nil {
			continue
		}
		def := strings.TrimSpace(m[1])
		lower := strings.ToLower(def)
		if len(def) >= 5 &&
			!strings.HasPrefix(lower, "for example") &&
			!strings.HasPrefix(lower, "example") &&
			!strings.HasPrefix(lower, "pronunciation") &&
			lower != "means" && lower != "is defined as" && lower != "refers to" {
			return def
		}
	}
	return ""
}

func englishExampleFromContext(word, text string) string {
	quoted := regexp.QuoteMeta(word)
	patterns := []string{
		`(?i)(?:For example|Example|e\.g\.)[:\s]*([^.!?]*\b` + quoted + `\b[^.!?]*)[.!?]`,
		`(?i)([^.!?]*\b` + quoted + `\b[^.!?]*)[.!?]`,
	}
	for _, p := range patterns {
		for _, m := range regexp.MustCompile(p).FindAllStringSubmatch(text, -1) {
			example := strings.TrimSpace(m[1])
			lower := strings.ToLower(example)
			if len(example) >= 10 && strings.Contains(lower, strings.ToLower(word)) &&
				!strings.HasPrefix(lower, "means") &&
				!strings.HasPrefix(lower, "is defined as") &&
				!strings.HasPrefix(lower, "refers to") &&
				!strings.HasPrefix(lower, "pronunciation") &&
				lower != strings.ToLower(word) {
				return example
			}
		}
	}
	return ""
}

func japaneseReadingFromContext(word, text string) string {
	quoted := regexp.QuoteMeta(word)
	m := regexp.MustCompile(quoted + `(?:（([^）]+)）|\(([^)]+)\))`).FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	reading := m[1]
	if reading == "" {
		reading = m[2]
	}
	return strings.TrimSpace(reading)
}

func japaneseDefinitionFromContext(word, text string) string {
	quoted := regexp.QuoteMeta(word)
	patterns := []string{
		quoted + `(?:（[^）]*）)?(?:という言葉)?は「([^」]+)」という意味`,
		quoted + `(?:（[^）]*）)?は「([^」]+)」`,
		quoted + `\s*[-–—]\s*([^(]+)`,
	}
	for _, p := range patterns {
		m := regexp.MustCompile(p).FindStringSubmatch(text)
		if m == nil {
			continue
		}
		def := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(def) >= 2 && !japaneseMetaWords[def] {
			return def
		}
	}
	return ""
}

func japaneseExampleFromContext(word, text string) string {
	quoted := regexp.QuoteMeta(word)
	patterns := []string{
		`例文?[：:]([^。]*` + quoted + `[^。]*)。?`,
		`([^。]*` + quoted + `[^。]*)。`,
	}
	for _, p := range patterns {
		for _, m := range regexp.MustCompile(p).FindAllStringSubmatch(text, -1) {
			example := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(example) >= 5 && strings.Contains(example, word) &&
				!strings.HasPrefix(example, "という意味") &&
				!strings.HasPrefix(example, "は「") &&
				!strings.HasPrefix(example, "「") &&
				example != word {
				return example
			}
		}
	}
	return ""
}
