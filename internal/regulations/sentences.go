package regulations

import (
	"strings"
	"unicode"
)

// sentence is one segmented sentence plus the byte offset where it starts
// in the source text. The offset feeds the section backscan.
type sentence struct {
	Text  string
	Start int
}

// abbreviations that should not terminate a sentence when followed by a
// period. Lowercase, without the trailing dot.
var abbreviations = map[string]struct{}{
	"e.g": {}, "i.e": {}, "etc": {}, "no": {}, "sec": {}, "art": {},
	"para": {}, "mr": {}, "mrs": {}, "ms": {}, "dr": {}, "inc": {},
	"ltd": {}, "corp": {}, "vs": {}, "v": {}, "u.s": {}, "st": {},
}

// splitSentences segments text on [.!?] runs followed by whitespace. It is
// a boundary heuristic, not a parser: common abbreviations are skipped,
// everything else that looks like a terminator ends the sentence.
func splitSentences(text string) []sentence {
	var out []sentence
	runes := []rune(text)
	start := -1
	bytePos := 0
	startByte := 0

	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := strings.TrimSpace(string(runes[start:end]))
		if raw != "" {
			out = append(out, sentence{Text: raw, Start: startByte})
		}
		start = -1
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if start < 0 && !unicode.IsSpace(r) {
			start = i
			startByte = bytePos
		}
		if start >= 0 && isTerminator(r) {
			// Swallow a run of terminators and trailing quotes/brackets.
			j := i
			for j+1 < len(runes) && (isTerminator(runes[j+1]) || isCloser(runes[j+1])) {
				j++
			}
			atEnd := j+1 >= len(runes)
			followedBySpace := !atEnd && unicode.IsSpace(runes[j+1])
			if (atEnd || followedBySpace) && !endsWithAbbreviation(runes[start:i]) {
				for k := i; k <= j; k++ {
					bytePos += len(string(runes[k]))
				}
				flush(j + 1)
				i = j
				continue
			}
			for k := i; k <= j; k++ {
				bytePos += len(string(runes[k]))
			}
			i = j
			continue
		}
		bytePos += len(string(r))
	}
	flush(len(runes))
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	return r == ')' || r == ']' || r == '"' || r == '\'' || r == '”'
}

func endsWithAbbreviation(body []rune) bool {
	s := string(body)
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	last := strings.ToLower(s[idx+1:])
	last = strings.TrimRight(last, ".")
	if last == "" {
		return false
	}
	// Single capitals like initials ("John Q. Public") are not boundaries.
	if len([]rune(last)) == 1 && last != "i" {
		return true
	}
	_, ok := abbreviations[last]
	return ok
}
