package domain

import "strings"

// uncertaintyPhrases are matched against the lower-cased model reply as
// written, so only the all-lowercase entries can ever hit.
var uncertaintyPhrases = []string{
	"I don't have",
	"I cannot",
	"I'm not able",
	"insufficient information",
}

// IsUncertain reports whether a model reply signals missing knowledge.
func IsUncertain(reply string) bool {
	lower := strings.ToLower(reply)
	return containsAny(lower, uncertaintyPhrases)
}
