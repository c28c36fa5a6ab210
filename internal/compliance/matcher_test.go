package compliance

import (
	"testing"

	"comply-backend/internal/regulations"
)

func rule(section, keyword string) regulations.Rule {
	return regulations.Rule{Section: section, Keywords: []string{keyword}, Requirement: section + " requirement"}
}

func TestEvaluateEmptyRuleSet(t *testing.T) {
	res := Evaluate("any form text", nil)
	if res.Score != 0 {
		t.Fatalf("expected score 0 for empty rule set, got %v", res.Score)
	}
	if res.TotalRules != 0 || len(res.Matched) != 0 || len(res.Missing) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestEvaluateCaseInsensitiveSubstring(t *testing.T) {
	rules := []regulations.Rule{rule("Benefits", "exclusion")}

	res := Evaluate("This EXCLUSIONS clause lists everything.", rules)
	if len(res.Matched) != 1 {
		t.Fatalf("expected substring match inside a larger word, got %+v", res)
	}
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
}

func TestEvaluateAnyKeywordSuffices(t *testing.T) {
	rules := []regulations.Rule{{
		Section:     "Renewability",
		Keywords:    []string{"guaranteed renewable", "conversion option"},
		Requirement: "Policies shall state renewability terms.",
	}}

	res := Evaluate("The conversion option is described on page two.", rules)
	if len(res.Matched) != 1 {
		t.Fatalf("expected match via second keyword, got %+v", res)
	}
}

func TestEvaluatePartition(t *testing.T) {
	rules := []regulations.Rule{
		rule("A", "grace period"),
		rule("B", "suicide clause"),
		rule("C", "war exclusion"),
	}
	res := Evaluate("A grace period of 31 days applies. No war exclusion language here... actually there is.", rules)

	if got := len(res.Matched) + len(res.Missing); got != res.TotalRules {
		t.Fatalf("matched+missing = %d, want %d", got, res.TotalRules)
	}
	if len(res.Matched) != 2 || len(res.Missing) != 1 {
		t.Fatalf("expected 2 matched / 1 missing, got %d/%d", len(res.Matched), len(res.Missing))
	}
	if res.Missing[0].Section != "B" {
		t.Fatalf("expected rule B missing, got %+v", res.Missing)
	}
	want := float64(2) / 3 * 100
	if res.Score != want {
		t.Fatalf("expected score %v, got %v", want, res.Score)
	}
}

func TestEvaluateScoreBounds(t *testing.T) {
	rules := []regulations.Rule{rule("A", "alpha"), rule("B", "beta")}

	if res := Evaluate("nothing relevant", rules); res.Score != 0 || len(res.Missing) != 2 {
		t.Fatalf("expected score 0 with all rules missing, got %+v", res)
	}
	if res := Evaluate("alpha and beta both present", rules); res.Score != 100 || len(res.Matched) != 2 {
		t.Fatalf("expected score 100 with all rules matched, got %+v", res)
	}
}

func TestEvaluateIgnoresEmptyKeyword(t *testing.T) {
	rules := []regulations.Rule{{Section: "X", Keywords: []string{""}, Requirement: "r"}}
	if res := Evaluate("anything", rules); len(res.Matched) != 0 {
		t.Fatalf("empty keyword must not match everything, got %+v", res)
	}
}
