package levels

import "github.com/btutor/content-grader/models"

// Tables is the complete set of lookup data the grading core reads. Build it
// once with NewTables and share it by reference; nothing mutates it after
// construction.
type Tables struct {
	cet  map[string]CETCriteria
	jlpt map[string]JLPTCriteria

	englishPatterns  []GrammarPattern
	japanesePatterns []GrammarPattern

	cetVocab  map[string]map[string]struct{}
	jlptVocab map[string]map[string]struct{}

	englishFrequencies  map[string]float64
	japaneseFrequencies map[string]float64

	advancedWords    map[string]struct{}
	simpleWords      map[string]struct{}
	educationalWords map[string]struct{}

	educationalJapanese []string
	educationalAny      []string
	explanatory         []string
	structural          []string
	engaging            []string
	interactive         []string
}

// NewTables builds the full lookup set. Grammar regexes are compiled here,
// once.
func NewTables() *Tables {
	return &Tables{
		cet:                 cetCriteria(),
		jlpt:                jlptCriteria(),
		englishPatterns:     englishGrammarPatterns(),
		japanesePatterns:    japaneseGrammarPatterns(),
		cetVocab:            cetVocabulary(),
		jlptVocab:           jlptVocabulary(),
		englishFrequencies:  englishWordFrequencies(),
		japaneseFrequencies: japaneseWordFrequencies(),
		advancedWords:       advancedEnglishWords(),
		simpleWords:         simpleEnglishWords(),
		educationalWords:    educationalEnglishWords(),
		educationalJapanese: educationalJapaneseMarkers(),
		educationalAny:      educationalKeywords(),
		explanatory:         explanatoryMarkers(),
		structural:          structureMarkers(),
		engaging:            engagingElements(),
		interactive:         interactivePhrases(),
	}
}

// CET returns the criteria for an English level. Unknown levels fall back to
// the CET-5 targets with the generic word-length band.
func (t *Tables) CET(level string) CETCriteria {
	if c, ok := t.cet[level]; ok {
		return c
	}
	c := t.cet["CET-5"]
	c.WordLength = DefaultCETWordLength
	return c
}

// JLPT returns the criteria for a Japanese level, defaulting unknown levels
// to the N3 midpoint.
func (t *Tables) JLPT(level string) JLPTCriteria {
	if c, ok := t.jlpt[level]; ok {
		return c
	}
	return t.jlpt["N3"]
}

// GrammarPatterns returns the weighted pattern set for a language, nil for
// unknown languages.
func (t *Tables) GrammarPatterns(lang models.Language) []GrammarPattern {
	switch lang {
	case models.LanguageEnglish:
		return t.englishPatterns
	case models.LanguageJapanese:
		return t.japanesePatterns
	default:
		return nil
	}
}

// LevelVocabulary returns the vocabulary set for a level in the given
// language. The second return is false when no list exists for that level.
func (t *Tables) LevelVocabulary(lang models.Language, level string) (map[string]struct{}, bool) {
	var byLevel map[string]map[string]struct{}
	switch lang {
	case models.LanguageEnglish:
		byLevel = t.cetVocab
	case models.LanguageJapanese:
		byLevel = t.jlptVocab
	default:
		return nil, false
	}
	set, ok := byLevel[level]
	return set, ok
}

// WordFrequency returns the relative frequency of a word, 0 for words outside
// the list (treated as maximally rare).
func (t *Tables) WordFrequency(lang models.Language, word string) float64 {
	switch lang {
	case models.LanguageEnglish:
		return t.englishFrequencies[word]
	case models.LanguageJapanese:
		return t.japaneseFrequencies[word]
	default:
		return 0
	}
}

// AdvancedWords is the CET-6 diagnostic word set.
func (t *Tables) AdvancedWords() map[string]struct{} { return t.advancedWords }

// SimpleWords is the CET-4 diagnostic word set.
func (t *Tables) SimpleWords() map[string]struct{} { return t.simpleWords }

// EducationalWords is the English educational-vocabulary bonus set.
func (t *Tables) EducationalWords() map[string]struct{} { return t.educationalWords }

// EducationalJapanese lists Japanese educational markers.
func (t *Tables) EducationalJapanese() []string { return t.educationalJapanese }

// EducationalKeywords lists the cross-language educational-value keywords.
func (t *Tables) EducationalKeywords() []string { return t.educationalAny }

// ExplanatoryMarkers lists causal/illustrative connectives.
func (t *Tables) ExplanatoryMarkers() []string { return t.explanatory }

// StructureMarkers lists didactic structure markers.
func (t *Tables) StructureMarkers() []string { return t.structural }

// EngagingElements lists interactive/narrative keywords.
func (t *Tables) EngagingElements() []string { return t.engaging }

// InteractivePhrases lists reader-addressing phrases.
func (t *Tables) InteractivePhrases() []string { return t.interactive }
