package reports

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoAppendReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	report := sampleReport("report-1", TypeManual, 50)

	mock.ExpectExec("INSERT INTO reports").
		WithArgs(
			report.ReportID,
			report.Filename,
			report.AnalysisDate,
			report.AnalysisType,
			report.TotalRules,
			report.MatchedCount,
			report.MissingCount,
			report.ComplianceScore,
			sqlmock.AnyArg(), // missing_rules payload
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendReport(context.Background(), report); err != nil {
		t.Fatalf("AppendReport: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoAppendAlert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	alert := Alert{
		AlertID:      "alert-1",
		Filename:     "form.pdf",
		AlertDate:    time.Now().UTC(),
		MissingRules: []MissingRule{{Section: "S", Keywords: []string{"k"}, Requirement: "r", RiskLevel: RiskLow}},
	}

	mock.ExpectExec("INSERT INTO alerts").
		WithArgs(alert.AlertID, alert.Filename, alert.AlertDate, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendAlert(context.Background(), alert); err != nil {
		t.Fatalf("AppendAlert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetReportNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, filename, analysis_date").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "filename", "analysis_date", "analysis_type",
			"total_rules", "matched_count", "missing_count", "compliance_score", "missing_rules",
		}))

	if _, err := repo.GetReport(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListReports(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "filename", "analysis_date", "analysis_type",
		"total_rules", "matched_count", "missing_count", "compliance_score", "missing_rules",
	}).AddRow("r1", "form.pdf", when, TypeManual, 2, 1, 1, 50.0, []byte(`[{"section":"S","keywords":["k"],"requirement":"r","risk_level":"High"}]`))

	mock.ExpectQuery("SELECT id, filename, analysis_date").WillReturnRows(rows)

	all, err := repo.ListReports(context.Background())
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(all) != 1 || all[0].ReportID != "r1" {
		t.Fatalf("unexpected reports: %+v", all)
	}
	if len(all[0].MissingRules) != 1 || all[0].MissingRules[0].RiskLevel != RiskHigh {
		t.Fatalf("missing rules not decoded: %+v", all[0].MissingRules)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
