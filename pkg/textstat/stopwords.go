package textstat

import "strings"

// englishStopwords are high-frequency function words excluded from the
// vocabulary fallback so that intersection against level word lists surfaces
// content words rather than grammar glue.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"as": {}, "at": {}, "be": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "does": {}, "doing": {},
	"down": {}, "during": {}, "each": {}, "few": {}, "for": {}, "from": {},
	"further": {}, "had": {}, "has": {}, "have": {}, "having": {}, "he": {},
	"her": {}, "here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "myself": {}, "no": {}, "nor": {}, "not": {},
	"now": {}, "of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "would": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// japaneseStopwords are particles and auxiliary fragments excluded from the
// Japanese vocabulary fallback.
var japaneseStopwords = map[string]struct{}{
	"という": {}, "です": {}, "ます": {}, "した": {}, "して": {}, "から": {},
	"まで": {}, "について": {}, "として": {}, "ので": {}, "けど": {}, "ている": {},
	"される": {}, "します": {}, "ました": {}, "でした": {}, "ません": {},
}

// IsStopword reports whether word should be ignored when intersecting text
// tokens against level vocabulary lists.
func IsStopword(word string) bool {
	if _, ok := englishStopwords[strings.ToLower(word)]; ok {
		return true
	}
	_, ok := japaneseStopwords[word]
	return ok
}
