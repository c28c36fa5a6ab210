// Package reports persists analysis outcomes and aggregates statistics
// over them.
package reports

import "time"

// Analysis type tags on a Report.
const (
	TypeManual = "manual"
	TypeAuto   = "auto"
)

// MissingRule is a rule the form failed to satisfy, with its assessed
// risk level attached.
type MissingRule struct {
	Section     string   `json:"section"`
	Keywords    []string `json:"keywords"`
	Requirement string   `json:"requirement"`
	RiskLevel   string   `json:"risk_level"`
}

// Report is the persisted record of one form's analysis. Reports are
// immutable after creation and only ever appended.
type Report struct {
	ReportID        string        `json:"report_id"`
	Filename        string        `json:"filename"`
	AnalysisDate    time.Time     `json:"analysis_date"`
	AnalysisType    string        `json:"analysis_type"`
	TotalRules      int           `json:"total_rules"`
	MatchedCount    int           `json:"matched_rules_count"`
	MissingCount    int           `json:"missing_rules_count"`
	ComplianceScore float64       `json:"compliance_score"`
	MissingRules    []MissingRule `json:"missing_rules"`
}

// Alert is the persisted missing-rule subset of a Report, raised when a
// form fails at least one rule.
type Alert struct {
	AlertID      string        `json:"alert_id"`
	Filename     string        `json:"filename"`
	AlertDate    time.Time     `json:"alert_date"`
	MissingRules []MissingRule `json:"missing_rules"`
}
