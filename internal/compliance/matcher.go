// Package compliance scores form text against a set of regulatory rules.
package compliance

import (
	"strings"

	"comply-backend/internal/regulations"
)

// Result is the outcome of matching one form against a rule set.
// Matched and Missing partition the rule set exactly.
type Result struct {
	TotalRules int                `json:"total_rules"`
	Matched    []regulations.Rule `json:"matched_rules"`
	Missing    []regulations.Rule `json:"missing_rules"`
	Score      float64            `json:"compliance_score"`
}

// Evaluate classifies each rule as matched when any of its keywords
// occurs in the form text, case-insensitively and as a substring (not
// token-bounded: "exclusion" matches inside "exclusions"). The score is
// matched/total×100, or 0 for an empty rule set.
func Evaluate(formText string, rules []regulations.Rule) Result {
	lowerText := strings.ToLower(formText)

	result := Result{TotalRules: len(rules)}
	for _, rule := range rules {
		if keywordPresent(lowerText, rule.Keywords) {
			result.Matched = append(result.Matched, rule)
		} else {
			result.Missing = append(result.Missing, rule)
		}
	}

	if result.TotalRules > 0 {
		result.Score = float64(len(result.Matched)) / float64(result.TotalRules) * 100
	}
	return result
}

func keywordPresent(lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
