package levels

// Range is an inclusive numeric target band.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the band.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// CETCriteria are the English per-level targets.
type CETCriteria struct {
	// WordLength is the average-word-length band used by vocabulary
	// appropriateness; outside it the score decays linearly, floored at 0.3.
	WordLength Range
	// SentenceLength is the words-per-sentence band used by difficulty match.
	SentenceLength Range
	// TargetWordLength and TargetSentenceLength are the point targets per-level
	// scoring measures distance from.
	TargetWordLength     float64
	TargetSentenceLength float64
	// TargetComplexity is the expected grammar-complexity constant.
	TargetComplexity float64
}

// JLPTCriteria are the Japanese per-level targets.
type JLPTCriteria struct {
	// KanjiRatio and HiraganaRatio are the expected character-class shares.
	KanjiRatio    float64
	HiraganaRatio float64
	// TargetComplexity is the expected grammar-complexity constant.
	TargetComplexity float64
}

// DefaultCETWordLength is the fallback band when a level has no entry.
var DefaultCETWordLength = Range{Min: 4.0, Max: 6.0}

func cetCriteria() map[string]CETCriteria {
	return map[string]CETCriteria{
		"CET-4": {
			WordLength:           Range{Min: 3.5, Max: 5.5},
			SentenceLength:       Range{Min: 5, Max: 12},
			TargetWordLength:     4.5,
			TargetSentenceLength: 8,
			TargetComplexity:     0.3,
		},
		"CET-5": {
			WordLength:           Range{Min: 4.5, Max: 6.5},
			SentenceLength:       Range{Min: 8, Max: 16},
			TargetWordLength:     5.5,
			TargetSentenceLength: 12,
			TargetComplexity:     0.5,
		},
		"CET-6": {
			WordLength:           Range{Min: 5.5, Max: 8.0},
			SentenceLength:       Range{Min: 12, Max: 20},
			TargetWordLength:     6.5,
			TargetSentenceLength: 16,
			TargetComplexity:     0.8,
		},
	}
}

func jlptCriteria() map[string]JLPTCriteria {
	return map[string]JLPTCriteria{
		"N5": {KanjiRatio: 0.1, HiraganaRatio: 0.7, TargetComplexity: 0.2},
		"N4": {KanjiRatio: 0.2, HiraganaRatio: 0.6, TargetComplexity: 0.3},
		"N3": {KanjiRatio: 0.3, HiraganaRatio: 0.5, TargetComplexity: 0.5},
		"N2": {KanjiRatio: 0.4, HiraganaRatio: 0.4, TargetComplexity: 0.7},
		"N1": {KanjiRatio: 0.5, HiraganaRatio: 0.3, TargetComplexity: 0.9},
	}
}
