package reports

import "context"

// DashboardStats summarizes the full report and alert history.
type DashboardStats struct {
	TotalFormsAnalyzed       int            `json:"total_forms_analyzed"`
	TotalAlertsRaised        int            `json:"total_alerts_raised"`
	AverageComplianceScore   float64        `json:"average_compliance_score"`
	ManualAnalysesCount      int            `json:"manual_analyses_count"`
	AutoAnalysesCount        int            `json:"auto_analyses_count"`
	RiskSeverityDistribution map[string]int `json:"risk_severity_distribution"`
}

// Stats computes dashboard statistics over the whole persisted history.
// Read-only: it never mutates the collections.
func Stats(ctx context.Context, repo Repo) (DashboardStats, error) {
	reportList, err := repo.ListReports(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	alertList, err := repo.ListAlerts(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	return Aggregate(reportList, alertList), nil
}

// Aggregate computes statistics from in-memory collections.
func Aggregate(reportList []Report, alertList []Alert) DashboardStats {
	stats := DashboardStats{
		TotalFormsAnalyzed:       len(reportList),
		TotalAlertsRaised:        len(alertList),
		RiskSeverityDistribution: map[string]int{},
	}

	var scoreSum float64
	for _, report := range reportList {
		scoreSum += report.ComplianceScore
		switch report.AnalysisType {
		case TypeManual:
			stats.ManualAnalysesCount++
		case TypeAuto:
			stats.AutoAnalysesCount++
		}
	}
	if len(reportList) > 0 {
		stats.AverageComplianceScore = scoreSum / float64(len(reportList))
	}

	for _, alert := range alertList {
		for _, rule := range alert.MissingRules {
			level := rule.RiskLevel
			if level == "" {
				level = RiskUnknown
			}
			stats.RiskSeverityDistribution[level]++
		}
	}

	return stats
}
