package regulations

import (
	"strings"
	"unicode"
)

// Noun-phrase chunking without a tagger: tokens are split at closed-class
// function words and a curated lexicon of verbs common in regulatory
// prose. What survives between breakers is treated as a noun phrase.
// Curated keyword lists over tagging is deliberate; precision is
// best-effort.

var determiners = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "all": {}, "any": {}, "each": {},
	"every": {}, "no": {}, "such": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "its": {}, "their": {}, "his": {},
	"her": {}, "our": {}, "your": {}, "both": {}, "either": {},
	"neither": {}, "some": {}, "certain": {}, "other": {}, "another": {},
}

var functionWords = map[string]struct{}{
	// conjunctions and complementizers
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"if": {}, "when": {}, "while": {}, "because": {}, "although": {},
	"though": {}, "unless": {}, "until": {}, "than": {}, "whether": {},
	"which": {}, "who": {}, "whom": {}, "whose": {}, "where": {},
	"how": {}, "why": {}, "what": {},
	// prepositions
	"in": {}, "on": {}, "at": {}, "by": {}, "for": {}, "with": {},
	"within": {}, "without": {}, "from": {}, "to": {}, "into": {},
	"onto": {}, "upon": {}, "under": {}, "over": {}, "between": {},
	"among": {}, "through": {}, "during": {}, "before": {}, "after": {},
	"above": {}, "below": {}, "of": {}, "as": {}, "per": {}, "via": {},
	"about": {}, "against": {}, "regarding": {}, "concerning": {},
	"pursuant": {}, "according": {}, "except": {}, "including": {},
	// pronouns
	"it": {}, "they": {}, "them": {}, "we": {}, "you": {}, "he": {},
	"she": {}, "him": {}, "us": {}, "i": {}, "there": {},
	// negation and common adverbials that never head a noun phrase
	"not": {}, "also": {}, "then": {}, "thus": {}, "therefore": {},
	"however": {}, "otherwise": {}, "herein": {}, "thereof": {},
	"hereby": {}, "thereto": {},
}

// Modals, auxiliaries, and verbs that recur in obligation sentences.
var verbLexicon = map[string]struct{}{
	"must": {}, "shall": {}, "will": {}, "may": {}, "can": {},
	"should": {}, "would": {}, "could": {}, "might": {},
	"be": {}, "is": {}, "are": {}, "was": {}, "were": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {},
	"disclose": {}, "discloses": {}, "disclosed": {},
	"provide": {}, "provides": {}, "provided": {},
	"ensure": {}, "ensures": {}, "ensured": {},
	"maintain": {}, "maintains": {}, "maintained": {},
	"submit": {}, "submits": {}, "submitted": {},
	"include": {}, "includes": {}, "included": {},
	"comply": {}, "complies": {}, "complied": {},
	"require": {}, "requires": {}, "required": {},
	"cover": {}, "covers": {}, "covered": {},
	"offer": {}, "offers": {}, "offered": {},
	"state": {}, "states": {}, "stated": {},
	"specify": {}, "specifies": {}, "specified": {},
	"notify": {}, "notifies": {}, "notified": {},
	"pay": {}, "pays": {}, "paid": {},
	"issue": {}, "issues": {}, "issued": {},
	"file": {}, "files": {}, "filed": {},
	"contain": {}, "contains": {}, "contained": {},
	"describe": {}, "describes": {}, "described": {},
	"explain": {}, "explains": {}, "explained": {},
	"furnish": {}, "furnishes": {}, "furnished": {},
	"renew": {}, "renews": {}, "renewed": {},
	"convert": {}, "converts": {}, "converted": {},
	"apply": {}, "applies": {}, "applied": {},
	"obtain": {}, "obtains": {}, "obtained": {},
	"keep": {}, "keeps": {}, "kept": {},
	"retain": {}, "retains": {}, "retained": {},
	"use": {}, "uses": {}, "used": {},
	"make": {}, "makes": {}, "made": {},
	"give": {}, "gives": {}, "given": {},
	"remain": {}, "remains": {}, "remained": {},
	"deliver": {}, "delivers": {}, "delivered": {},
	"display": {}, "displays": {}, "displayed": {},
	"present": {}, "presents": {}, "presented": {},
	"permit": {}, "permits": {}, "permitted": {},
	"prohibit": {}, "prohibits": {}, "prohibited": {},
}

// Nouns that would otherwise be mistaken for -ly adverbs.
var lyNouns = map[string]struct{}{
	"family": {}, "assembly": {}, "reply": {}, "monopoly": {},
}

// nounChunks extracts noun-phrase chunks from a single sentence.
// Determiners are kept inside a chunk ("all exclusions") but a run of
// nothing but determiners is dropped.
func nounChunks(sent string) []string {
	tokens := strings.Fields(sent)
	var chunks []string
	var run []string

	flush := func() {
		// Drop trailing determiners left dangling by a breaker.
		for len(run) > 0 && isDeterminer(run[len(run)-1]) {
			run = run[:len(run)-1]
		}
		headless := true
		for _, tok := range run {
			if !isDeterminer(tok) {
				headless = false
				break
			}
		}
		if len(run) > 0 && !headless {
			chunks = append(chunks, strings.Join(run, " "))
		}
		run = nil
	}

	for _, raw := range tokens {
		tok := trimEdgePunct(raw)
		if tok == "" || isBreaker(tok) {
			flush()
			continue
		}
		run = append(run, tok)
		// Punctuation glued to the token ends the phrase too.
		if raw != tok && strings.IndexFunc(raw[strings.Index(raw, tok)+len(tok):], func(r rune) bool {
			return r == ',' || r == ';' || r == ':' || r == '.' || r == '!' || r == '?'
		}) >= 0 {
			flush()
		}
	}
	flush()
	return chunks
}

func isDeterminer(tok string) bool {
	_, ok := determiners[strings.ToLower(tok)]
	return ok
}

func isBreaker(tok string) bool {
	lower := strings.ToLower(tok)
	if _, ok := functionWords[lower]; ok {
		return true
	}
	if _, ok := verbLexicon[lower]; ok {
		return true
	}
	if looksLikeAdverb(lower) {
		return true
	}
	return false
}

func looksLikeAdverb(lower string) bool {
	if len(lower) < 5 || !strings.HasSuffix(lower, "ly") {
		return false
	}
	_, noun := lyNouns[lower]
	return !noun
}

func trimEdgePunct(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
