// Package regulations synthesizes structured compliance rules from raw
// regulatory text. Synthesis is heuristic and best-effort: obligation
// sentences become keyword-tagged rules, and documents without obligation
// language fall back to named-entity rules.
package regulations

// Rule is one regulatory requirement. Keywords are OR-matched against
// form text by the compliance matcher. Rules are immutable once
// synthesized; duplicates across overlapping documents are not merged.
type Rule struct {
	Section     string   `json:"section"`
	Keywords    []string `json:"keywords"`
	Requirement string   `json:"requirement"`
}
