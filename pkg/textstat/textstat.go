// Package textstat provides the surface-text statistics every grading
// heuristic is built on: tokenization, sentence splitting, character-class
// counts and score clamping. All functions are pure and allocation-light.
package textstat

import (
	"regexp"
	"strings"
)

var (
	englishWordRE      = regexp.MustCompile(`[a-zA-Z]+`)
	englishSentenceRE  = regexp.MustCompile(`[.!?]+`)
	japaneseSentenceRE = regexp.MustCompile(`[。！？]+`)
	anySentenceRE      = regexp.MustCompile(`[.!?。！？]+`)

	hiraganaRE    = regexp.MustCompile(`[\x{3040}-\x{309F}]`)
	katakanaRE    = regexp.MustCompile(`[\x{30A0}-\x{30FF}]`)
	kanjiRE       = regexp.MustCompile(`[\x{4E00}-\x{9FAF}]`)
	japaneseRunRE = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]+`)

	// Kanji-led compounds and standalone hiragana words, the units the
	// vocabulary fallback intersects against level word lists.
	japaneseWordRE = regexp.MustCompile(`[\x{4E00}-\x{9FAF}][\x{3040}-\x{309F}\x{4E00}-\x{9FAF}]*|[\x{3040}-\x{309F}]{2,}`)
)

// Clamp bounds x to [lo, hi]. Every heuristic output is advisory and gets
// clamped at the boundary instead of validated.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// EnglishWords returns the lowercased alphabetic tokens of text.
func EnglishWords(text string) []string {
	return englishWordRE.FindAllString(strings.ToLower(text), -1)
}

// AvgWordLength returns the mean rune length of words, or 0 for an empty slice.
func AvgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}

func splitSentences(text string, re *regexp.Regexp) []string {
	parts := re.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// EnglishSentences splits text on English sentence terminators, dropping
// empty fragments.
func EnglishSentences(text string) []string {
	return splitSentences(text, englishSentenceRE)
}

// JapaneseSentences splits text on Japanese sentence terminators.
func JapaneseSentences(text string) []string {
	return splitSentences(text, japaneseSentenceRE)
}

// Sentences splits text on sentence terminators of either script.
func Sentences(text string) []string {
	return splitSentences(text, anySentenceRE)
}

// AvgSentenceLength returns words-per-sentence, or 0 when there are no
// sentences.
func AvgSentenceLength(wordCount, sentenceCount int) float64 {
	if sentenceCount == 0 {
		return 0
	}
	return float64(wordCount) / float64(sentenceCount)
}

// CharCounts holds per-script character counts for Japanese text.
type CharCounts struct {
	Hiragana int
	Katakana int
	Kanji    int
}

// CountJapanese tallies hiragana, katakana and kanji characters in text.
func CountJapanese(text string) CharCounts {
	return CharCounts{
		Hiragana: len(hiraganaRE.FindAllString(text, -1)),
		Katakana: len(katakanaRE.FindAllString(text, -1)),
		Kanji:    len(kanjiRE.FindAllString(text, -1)),
	}
}

// Total returns the count of Japanese characters across all three scripts.
func (c CharCounts) Total() int {
	return c.Hiragana + c.Katakana + c.Kanji
}

// KanjiRatio returns the kanji share of Japanese characters, 0 for empty text.
func (c CharCounts) KanjiRatio() float64 {
	if t := c.Total(); t > 0 {
		return float64(c.Kanji) / float64(t)
	}
	return 0
}

// HiraganaRatio returns the hiragana share of Japanese characters.
func (c CharCounts) HiraganaRatio() float64 {
	if t := c.Total(); t > 0 {
		return float64(c.Hiragana) / float64(t)
	}
	return 0
}

// JapaneseRuns returns maximal runs of Japanese characters in text.
func JapaneseRuns(text string) []string {
	return japaneseRunRE.FindAllString(text, -1)
}

// JapaneseWords returns word-like Japanese units: kanji-led compounds and
// hiragana words of two or more characters.
func JapaneseWords(text string) []string {
	return japaneseWordRE.FindAllString(text, -1)
}
