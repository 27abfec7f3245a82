// Package models defines data structures shared by the grading core and the CLI.
package models

import "strings"

// Language tags the language family of a content item. The grading core
// dispatches on this tag; anything it cannot recognize is LanguageOther.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageJapanese Language = "japanese"
	LanguageOther    Language = "other"
)

// ParseLanguage maps a raw language string to a Language tag.
// Unknown values collapse to LanguageOther rather than failing.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish
	case LanguageJapanese:
		return LanguageJapanese
	default:
		return LanguageOther
	}
}

// ContentType classifies learning content by its form.
type ContentType string

const (
	ContentTypeArticle  ContentType = "article"
	ContentTypeNews     ContentType = "news"
	ContentTypeDialogue ContentType = "dialogue"
	ContentTypeExercise ContentType = "exercise"
	ContentTypeCultural ContentType = "cultural"
	ContentTypeAudio    ContentType = "audio"
	ContentTypeVideo    ContentType = "video"
)

// Content is a single piece of learning material, supplied already-fetched by
// a crawling collaborator. The grading core never mutates it.
type Content struct {
	ContentID       string      `json:"content_id" yaml:"content_id"`
	Title           string      `json:"title" yaml:"title"`
	Body            string      `json:"body" yaml:"body"`
	Language        Language    `json:"language" yaml:"language"`
	DifficultyLevel string      `json:"difficulty_level" yaml:"difficulty_level"` // claimed level, may be absent or wrong
	ContentType     ContentType `json:"content_type" yaml:"content_type"`
	SourceURL       string      `json:"source_url" yaml:"source_url"`
	Tags            []string    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Text returns the title and body joined the way every heuristic consumes them.
func (c *Content) Text() string {
	return c.Title + " " + c.Body
}
