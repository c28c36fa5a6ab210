package analysis_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"comply-backend/internal/bootstrap"
	"comply-backend/internal/shared/config"
)

func writeDocxFixture(t *testing.T, path, text string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	regsDir := filepath.Join(dataDir, "regulations")
	formsDir := filepath.Join(dataDir, "forms")
	for _, dir := range []string{regsDir, formsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	writeDocxFixture(t, filepath.Join(regsDir, "regulation.docx"),
		"POLICY DISCLOSURES. Insurers must disclose all exclusions to the policyholder.")
	writeDocxFixture(t, filepath.Join(formsDir, "form.docx"),
		"Our insurers disclose all exclusions in plain language.")

	cfg := config.Config{
		Port:               "0",
		CORSAllowOrigin:    []string{"http://localhost:5173"},
		Env:                "dev",
		DataDir:            dataDir,
		RegulationsDir:     regsDir,
		FormsDir:           formsDir,
		AnalysisStagePause: 10 * time.Millisecond,
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalysisRunAndReports(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	// Rules derived from the regulation corpus.
	respRules := doJSON(t, router, http.MethodGet, "/api/v1/regulations/rules", "")
	if respRules.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respRules.Code)
	}
	var rules struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(respRules.Body).Decode(&rules); err != nil {
		t.Fatalf("decode rules response: %v", err)
	}
	if rules.Count == 0 {
		t.Fatal("expected at least one synthesized rule")
	}

	// Manual run over the single compliant form.
	respRun := doJSON(t, router, http.MethodPost, "/api/v1/analysis/run", "")
	if respRun.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respRun.Code)
	}
	var run struct {
		AnalysisResults []struct {
			ReportID        string  `json:"report_id"`
			Filename        string  `json:"filename"`
			ComplianceScore float64 `json:"compliance_score"`
		} `json:"analysis_results"`
	}
	if err := json.NewDecoder(respRun.Body).Decode(&run); err != nil {
		t.Fatalf("decode run response: %v", err)
	}
	if len(run.AnalysisResults) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.AnalysisResults))
	}
	if run.AnalysisResults[0].ComplianceScore != 100 {
		t.Fatalf("expected score 100, got %v", run.AnalysisResults[0].ComplianceScore)
	}

	// The run is visible in history.
	respList := doJSON(t, router, http.MethodGet, "/api/v1/reports", "")
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var list struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if list.Count != 1 {
		t.Fatalf("expected 1 report, got %d", list.Count)
	}

	respGet := doJSON(t, router, http.MethodGet, "/api/v1/reports/"+run.AnalysisResults[0].ReportID, "")
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	respMissing := doJSON(t, router, http.MethodGet, "/api/v1/reports/no-such-id", "")
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respMissing.Code)
	}

	respStats := doJSON(t, router, http.MethodGet, "/api/v1/stats", "")
	if respStats.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respStats.Code)
	}
	var stats struct {
		TotalFormsAnalyzed int `json:"total_forms_analyzed"`
	}
	if err := json.NewDecoder(respStats.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats response: %v", err)
	}
	if stats.TotalFormsAnalyzed != 1 {
		t.Fatalf("expected 1 analyzed form, got %d", stats.TotalFormsAnalyzed)
	}
}

func TestScheduleValidation(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	respBad := doJSON(t, router, http.MethodPost, "/api/v1/analysis/schedule", "not json")
	if respBad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respBad.Code)
	}
	respNeg := doJSON(t, router, http.MethodPost, "/api/v1/analysis/schedule", `{"delay_seconds":-1}`)
	if respNeg.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respNeg.Code)
	}

	respStatus := doJSON(t, router, http.MethodGet, "/api/v1/analysis/status", "")
	if respStatus.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respStatus.Code)
	}
	var status struct {
		IsRunning bool `json:"is_running"`
	}
	if err := json.NewDecoder(respStatus.Body).Decode(&status); err != nil {
		t.Fatalf("decode status response: %v", err)
	}
	if status.IsRunning {
		t.Fatal("expected no run in progress")
	}

	respClear := doJSON(t, router, http.MethodDelete, "/api/v1/analysis/status/message", "")
	if respClear.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respClear.Code)
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	respHealth := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
	if respHealth.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respHealth.Code)
	}

	respMetrics := doJSON(t, router, http.MethodGet, "/metrics", "")
	if respMetrics.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respMetrics.Code)
	}
	if !strings.Contains(respMetrics.Body.String(), "analysis_runs_started_total") {
		t.Fatalf("metrics output missing run counter: %s", respMetrics.Body.String())
	}
}
