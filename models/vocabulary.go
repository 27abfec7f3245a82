package models

// VocabularyItem is one vocabulary entry extracted from content. Reading,
// Definition, ExampleSentence and AudioURL may legitimately be empty when the
// surrounding text did not yield them.
type VocabularyItem struct {
	Word            string   `json:"word" yaml:"word"`
	Reading         string   `json:"reading,omitempty" yaml:"reading,omitempty"` // kana reading (Japanese) or IPA (English)
	Definition      string   `json:"definition,omitempty" yaml:"definition,omitempty"`
	ExampleSentence string   `json:"example_sentence,omitempty" yaml:"example_sentence,omitempty"`
	Level           string   `json:"level" yaml:"level"`
	Language        Language `json:"language" yaml:"language"`
	SourceURL       string   `json:"source_url" yaml:"source_url"`
	AudioURL        string   `json:"audio_url,omitempty" yaml:"audio_url,omitempty"`
}
