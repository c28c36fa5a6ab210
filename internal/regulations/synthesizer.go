package regulations

import (
	"fmt"
	"strings"

	"comply-backend/internal/extract"
	"comply-backend/internal/shared/telemetry"
)

// Synthesizer converts raw regulatory text into Rules.
type Synthesizer struct {
	Sections SectionClassifier
}

// NewSynthesizer returns a Synthesizer with the default section backscan.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{Sections: UppercaseBackscan{}}
}

// Synthesize segments text into sentences, turns each obligation sentence
// ("must"/"shall") into a keyword-tagged Rule, and falls back to
// named-entity rules when the document carries no obligation language.
// Output is deterministic for identical input.
func (s *Synthesizer) Synthesize(text string) []Rule {
	var rules []Rule

	for _, sent := range splitSentences(text) {
		if !hasObligationCue(sent.Text) {
			continue
		}
		keywords := nounChunks(sent.Text)
		if len(keywords) == 0 {
			continue
		}
		rules = append(rules, Rule{
			Section:     s.classifier().Classify(text[:sent.Start]),
			Keywords:    keywords,
			Requirement: sent.Text,
		})
	}

	if len(rules) == 0 {
		for _, ent := range extractEntities(text) {
			rules = append(rules, Rule{
				Section:     ent.Category,
				Keywords:    []string{ent.Text},
				Requirement: fmt.Sprintf("Ensure compliance regarding %s", ent.Text),
			})
		}
	}

	return rules
}

// FromCorpus synthesizes rules for every document in dir and pools them.
// Rules from overlapping documents are concatenated, never de-duplicated;
// consumers must tolerate duplicates.
func (s *Synthesizer) FromCorpus(dir string) ([]Rule, error) {
	docs, err := extract.Corpus(dir)
	if err != nil {
		return nil, err
	}

	var all []Rule
	for _, doc := range docs {
		rules := s.Synthesize(doc.Text)
		if len(rules) == 0 {
			telemetry.Warn("regulations.no_rules", map[string]any{"filename": doc.Filename})
		}
		all = append(all, rules...)
	}
	return all, nil
}

func (s *Synthesizer) classifier() SectionClassifier {
	if s.Sections != nil {
		return s.Sections
	}
	return UppercaseBackscan{}
}

// hasObligationCue reports whether the sentence carries modal obligation
// language. Substring test on the lowered sentence, matching the
// original heuristic ("mustard" would trip it too).
func hasObligationCue(sent string) bool {
	lower := strings.ToLower(sent)
	return strings.Contains(lower, "must") || strings.Contains(lower, "shall")
}
