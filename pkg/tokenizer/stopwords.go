package tokenizer

import "strings"

// stopwords are frequently occurring English words that carry little signal
// in a frequency analysis.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "can't": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "don't": {}, "down": {},
	"during": {},

	"each": {}, "even": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {},

	"i": {}, "i'm": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"it's": {}, "its": {}, "itself": {},

	"just": {},

	"me": {}, "more": {}, "most": {}, "my": {}, "myself": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "out": {}, "over": {}, "own": {},

	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},

	"under": {}, "until": {}, "up": {}, "us": {},

	"very": {},

	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "would": {},

	"you": {}, "your": {}, "yours": {}, "yourself": {},
}

// IsStopword reports whether word, ignoring case, is a common stopword.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}
