package regulations

import (
	"strings"
	"unicode"
)

// DefaultSection is used when no section label can be inferred.
const DefaultSection = "General"

// SectionClassifier assigns a section label to an obligation sentence
// from the text preceding it. Implementations are heuristics and may
// mislabel.
type SectionClassifier interface {
	Classify(preceding string) string
}

// UppercaseBackscan scans the tokens preceding a sentence in reverse
// order and returns the nearest all-uppercase alphabetic token, treating
// it as the section heading the sentence falls under.
type UppercaseBackscan struct{}

// Classify implements SectionClassifier.
func (UppercaseBackscan) Classify(preceding string) string {
	tokens := strings.Fields(preceding)
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := trimEdgePunct(tokens[i])
		if isUpperAlpha(tok) {
			return tok
		}
	}
	return DefaultSection
}

func isUpperAlpha(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) || !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
