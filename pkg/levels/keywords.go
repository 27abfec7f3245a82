package levels

// Keyword lists consumed by the metric heuristics. All matching is simple
// substring or token membership over the lowercased title+body.

func advancedEnglishWords() map[string]struct{} {
	return wordSet(
		"sophisticated", "epistemological", "phenomenological", "analytical",
		"comprehensive", "theoretical", "paradigms", "interpretations",
		"considerations", "necessitate", "nuanced", "perspectives",
	)
}

func simpleEnglishWords() map[string]struct{} {
	return wordSet("student", "school", "teacher", "friends", "nice", "many", "go", "am")
}

func educationalEnglishWords() map[string]struct{} {
	return wordSet("learn", "study", "education", "knowledge", "skill", "develop", "improve")
}

func educationalJapaneseMarkers() []string {
	return []string{"学習", "勉強", "教育", "練習", "研究"}
}

// educationalKeywords feed the educational-value density check for both
// languages.
func educationalKeywords() []string {
	return []string{
		"learn", "study", "practice", "example", "exercise", "grammar", "vocabulary",
		"学習", "勉強", "練習", "例", "文法", "語彙",
	}
}

// explanatoryMarkers signal causal or illustrative prose.
func explanatoryMarkers() []string {
	return []string{
		"because", "therefore", "however", "for example", "such as",
		"なぜなら", "だから", "しかし", "例えば",
	}
}

// structureMarkers signal explicitly didactic structure inside a body.
func structureMarkers() []string {
	return []string{"example", "for instance", "such as", "例えば"}
}

// engagingElements signal interactive or narrative content.
func engagingElements() []string {
	return []string{
		"question", "quiz", "challenge", "game", "story", "dialogue",
		"質問", "クイズ", "挑戦", "ゲーム", "物語", "会話",
	}
}

// interactivePhrases address the reader directly.
func interactivePhrases() []string {
	return []string{
		"what do you think", "try this", "can you", "let's",
		"どう思いますか", "やってみて", "できますか", "一緒に",
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
