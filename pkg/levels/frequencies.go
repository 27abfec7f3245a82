package levels

// Relative word-frequency data, 1.0 = most frequent. Used to rank fallback
// vocabulary candidates so rarer (more teachable) words surface first.

func englishWordFrequencies() map[string]float64 {
	return map[string]float64{
		"the": 1.0, "be": 0.95, "to": 0.9, "of": 0.85, "and": 0.8,
		"a": 0.75, "in": 0.7, "that": 0.65, "have": 0.6, "i": 0.55,
		"it": 0.5, "for": 0.45, "not": 0.4, "on": 0.35, "with": 0.3,
		"he": 0.25, "as": 0.2, "you": 0.15, "do": 0.1, "at": 0.05,
	}
}

func japaneseWordFrequencies() map[string]float64 {
	return map[string]float64{
		"の": 1.0, "に": 0.95, "は": 0.9, "を": 0.85, "が": 0.8,
		"で": 0.75, "と": 0.7, "た": 0.65, "し": 0.6, "て": 0.55,
		"だ": 0.5, "か": 0.45, "な": 0.4, "も": 0.35, "から": 0.3,
	}
}
