package reports

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleReport(id, analysisType string, score float64) Report {
	return Report{
		ReportID:        id,
		Filename:        "form.pdf",
		AnalysisDate:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		AnalysisType:    analysisType,
		TotalRules:      2,
		MatchedCount:    1,
		MissingCount:    1,
		ComplianceScore: score,
		MissingRules: []MissingRule{{
			Section:     "Benefit Description",
			Keywords:    []string{"exclusion"},
			Requirement: "Must disclose all exclusions prominently",
			RiskLevel:   RiskHigh,
		}},
	}
}

func TestJSONRepoAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo, err := NewJSONRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if err := repo.AppendReport(ctx, sampleReport("r1", TypeManual, 50)); err != nil {
		t.Fatalf("append r1: %v", err)
	}
	if err := repo.AppendReport(ctx, sampleReport("r2", TypeAuto, 100)); err != nil {
		t.Fatalf("append r2: %v", err)
	}

	all, err := repo.ListReports(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(all))
	}
	if all[0].ReportID != "r1" || all[1].ReportID != "r2" {
		t.Fatalf("expected append order preserved, got %q then %q", all[0].ReportID, all[1].ReportID)
	}
	if all[0].MissingRules[0].RiskLevel != RiskHigh {
		t.Fatalf("missing rule round-trip lost risk level: %+v", all[0].MissingRules)
	}
}

func TestJSONRepoGetReport(t *testing.T) {
	ctx := context.Background()
	repo, err := NewJSONRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.AppendReport(ctx, sampleReport("r1", TypeManual, 50)); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.GetReport(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReportID != "r1" {
		t.Fatalf("expected r1, got %q", got.ReportID)
	}

	if _, err := repo.GetReport(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONRepoMissingAndEmptyFilesReadEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo, err := NewJSONRepo(dir)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	if all, err := repo.ListReports(ctx); err != nil || len(all) != 0 {
		t.Fatalf("missing file: expected empty list, got %v / %v", all, err)
	}

	if err := os.WriteFile(filepath.Join(dir, reportsFile), nil, 0o644); err != nil {
		t.Fatalf("write empty file: %v", err)
	}
	if all, err := repo.ListReports(ctx); err != nil || len(all) != 0 {
		t.Fatalf("empty file: expected empty list, got %v / %v", all, err)
	}
}

func TestJSONRepoMalformedFileFailsLoudly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo, err := NewJSONRepo(dir)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, reportsFile), []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := repo.ListReports(ctx); err == nil {
		t.Fatal("expected error for malformed reports file")
	}
	if err := repo.AppendReport(ctx, sampleReport("r1", TypeManual, 0)); err == nil {
		t.Fatal("expected append to fail on malformed reports file")
	}
}

func TestJSONRepoAlerts(t *testing.T) {
	ctx := context.Background()
	repo, err := NewJSONRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	alert := Alert{
		AlertID:   "a1",
		Filename:  "form.pdf",
		AlertDate: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		MissingRules: []MissingRule{
			{Section: "S", Keywords: []string{"k"}, Requirement: "r", RiskLevel: RiskLow},
		},
	}
	if err := repo.AppendAlert(ctx, alert); err != nil {
		t.Fatalf("append alert: %v", err)
	}

	all, err := repo.ListAlerts(ctx)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}
	if len(all) != 1 || all[0].AlertID != "a1" {
		t.Fatalf("unexpected alerts: %+v", all)
	}
}
