package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Unlike the JSON store, appends
// are true row inserts, so concurrent writers are safe without an
// application-level lock.
type PGRepo struct {
	DB *sql.DB
}

// AppendReport inserts a report row.
func (r *PGRepo) AppendReport(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (id, filename, analysis_date, analysis_type, total_rules, matched_count, missing_count, compliance_score, missing_rules)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	payload, err := json.Marshal(report.MissingRules)
	if err != nil {
		return fmt.Errorf("encode missing rules: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		report.ReportID,
		report.Filename,
		report.AnalysisDate,
		report.AnalysisType,
		report.TotalRules,
		report.MatchedCount,
		report.MissingCount,
		report.ComplianceScore,
		payload,
	)
	return err
}

// AppendAlert inserts an alert row.
func (r *PGRepo) AppendAlert(ctx context.Context, alert Alert) error {
	const query = `
INSERT INTO alerts (id, filename, alert_date, missing_rules)
VALUES ($1, $2, $3, $4)`
	payload, err := json.Marshal(alert.MissingRules)
	if err != nil {
		return fmt.Errorf("encode missing rules: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query, alert.AlertID, alert.Filename, alert.AlertDate, payload)
	return err
}

// ListReports returns all reports ordered by analysis date.
func (r *PGRepo) ListReports(ctx context.Context) ([]Report, error) {
	const query = `
SELECT id, filename, analysis_date, analysis_type, total_rules, matched_count, missing_count, compliance_score, missing_rules
FROM reports
ORDER BY analysis_date, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

// ListAlerts returns all alerts ordered by alert date.
func (r *PGRepo) ListAlerts(ctx context.Context) ([]Alert, error) {
	const query = `
SELECT id, filename, alert_date, missing_rules
FROM alerts
ORDER BY alert_date, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Alert
	for rows.Next() {
		var alert Alert
		var payload []byte
		if err := rows.Scan(&alert.AlertID, &alert.Filename, &alert.AlertDate, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &alert.MissingRules); err != nil {
			return nil, fmt.Errorf("decode missing rules: %w", err)
		}
		out = append(out, alert)
	}
	return out, rows.Err()
}

// GetReport returns a report by its ID.
func (r *PGRepo) GetReport(ctx context.Context, reportID string) (Report, error) {
	const query = `
SELECT id, filename, analysis_date, analysis_type, total_rules, matched_count, missing_count, compliance_score, missing_rules
FROM reports
WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, reportID)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Report{}, ErrNotFound
	}
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (Report, error) {
	var report Report
	var payload []byte
	if err := row.Scan(
		&report.ReportID,
		&report.Filename,
		&report.AnalysisDate,
		&report.AnalysisType,
		&report.TotalRules,
		&report.MatchedCount,
		&report.MissingCount,
		&report.ComplianceScore,
		&payload,
	); err != nil {
		return Report{}, err
	}
	if err := json.Unmarshal(payload, &report.MissingRules); err != nil {
		return Report{}, fmt.Errorf("decode missing rules: %w", err)
	}
	return report, nil
}
