package levels

import "regexp"

// GrammarPattern is one weighted surface pattern. Weight accumulates per
// occurrence, capped at three occurrences so repeated trivial matches cannot
// run the score away.
type GrammarPattern struct {
	Name   string
	RE     *regexp.Regexp
	Weight float64
}

func englishGrammarPatterns() []GrammarPattern {
	return []GrammarPattern{
		// Basic tense markers
		{Name: "simple_present", RE: regexp.MustCompile(`(?i)\b(am|is|are|do|does)\b`), Weight: 0.1},
		{Name: "simple_past", RE: regexp.MustCompile(`(?i)\b\w+ed\b|\bwas\b|\bwere\b`), Weight: 0.15},

		// Intermediate forms
		{Name: "present_continuous", RE: regexp.MustCompile(`(?i)\b(am|is|are)\s+\w+ing\b`), Weight: 0.2},
		{Name: "present_perfect", RE: regexp.MustCompile(`(?i)\bhave\s+\w+ed\b|\bhas\s+\w+ed\b`), Weight: 0.3},
		{Name: "modal_verbs", RE: regexp.MustCompile(`(?i)\b(would|could|might|should|must)\b`), Weight: 0.25},

		// Advanced constructions
		{Name: "passive_voice", RE: regexp.MustCompile(`(?i)\b(is|are|was|were)\s+\w+ed\b`), Weight: 0.4},
		{Name: "conditional", RE: regexp.MustCompile(`(?i)\bif\s+\w+.*would\b`), Weight: 0.5},
		{Name: "complex_sentences", RE: regexp.MustCompile(`(?i)\b(although|however|therefore|nevertheless|furthermore)\b`), Weight: 0.4},
		{Name: "relative_clauses", RE: regexp.MustCompile(`(?i)\b(which|that|who|whom|whose)\b`), Weight: 0.35},
		{Name: "subjunctive", RE: regexp.MustCompile(`(?i)\bif\s+\w+\s+were\b`), Weight: 0.6},
	}
}

func japaneseGrammarPatterns() []GrammarPattern {
	return []GrammarPattern{
		// Basic polite forms and particles
		{Name: "masu_form", RE: regexp.MustCompile(`ます|ました`), Weight: 0.1},
		{Name: "desu_form", RE: regexp.MustCompile(`です|でした`), Weight: 0.1},
		{Name: "basic_particles", RE: regexp.MustCompile(`は|が|を|に|で|と`), Weight: 0.05},

		// Intermediate forms
		{Name: "te_form", RE: regexp.MustCompile(`て|で`), Weight: 0.2},
		{Name: "potential", RE: regexp.MustCompile(`できる|られる`), Weight: 0.3},
		{Name: "conditional", RE: regexp.MustCompile(`ば|たら|なら`), Weight: 0.25},

		// Advanced constructions
		{Name: "passive", RE: regexp.MustCompile(`れる|られる`), Weight: 0.4},
		{Name: "causative", RE: regexp.MustCompile(`せる|させる`), Weight: 0.5},
		{Name: "keigo", RE: regexp.MustCompile(`いらっしゃる|おっしゃる|なさる|いたします`), Weight: 0.6},
		{Name: "complex_grammar", RE: regexp.MustCompile(`について|に関して|によって|において`), Weight: 0.4},
		{Name: "formal_expressions", RE: regexp.MustCompile(`であります|でございます|いたします`), Weight: 0.5},
	}
}
