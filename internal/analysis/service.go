// Package analysis orchestrates the compliance pipeline: it walks the
// forms corpus, scores each form against the current regulation set, and
// records Reports and Alerts. It also owns the one-shot scheduled run
// and its status lifecycle.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"comply-backend/internal/compliance"
	"comply-backend/internal/extract"
	"comply-backend/internal/regulations"
	"comply-backend/internal/reports"
	"comply-backend/internal/shared/metrics"
	"comply-backend/internal/shared/telemetry"
)

// ErrAnalysisInProgress rejects a schedule request while a scheduled run
// is active. Requests are rejected, never queued.
var ErrAnalysisInProgress = errors.New("an analysis is already in progress")

const (
	startMessage = "Auto analysis has started!"
	endMessage   = "Auto analysis has ended!"

	// timedSuffix marks reports produced by a scheduled run.
	timedSuffix = " (Timed Analysis)"
)

// FormResult is the per-form outcome returned to manual callers.
type FormResult struct {
	ReportID        string                `json:"report_id"`
	Filename        string                `json:"filename"`
	ComplianceScore float64               `json:"compliance_score"`
	MissingElements []reports.MissingRule `json:"missing_elements"`
}

// Service runs compliance analyses over the forms corpus.
type Service struct {
	FormsDir   string
	Rules      *regulations.Service
	Repo       reports.Repo
	Risk       reports.RiskAssessor
	Status     *StatusTracker
	StagePause time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewService constructs a Service.
func NewService(formsDir string, rules *regulations.Service, repo reports.Repo, risk reports.RiskAssessor, stagePause time.Duration) *Service {
	return &Service{
		FormsDir:   formsDir,
		Rules:      rules,
		Repo:       repo,
		Risk:       risk,
		Status:     NewStatusTracker(),
		StagePause: stagePause,
		now:        func() time.Time { return time.Now().UTC() },
		sleep:      time.Sleep,
	}
}

// RunManual analyzes every form in the corpus synchronously and returns
// the per-form results. Each run appends a fresh batch of reports; runs
// are never de-duplicated against history.
func (s *Service) RunManual(ctx context.Context) ([]FormResult, error) {
	return s.run(ctx, reports.TypeManual, "")
}

// Schedule starts a one-time delayed analysis on its own worker
// goroutine. At most one scheduled run may be active: a request while
// one is in flight returns ErrAnalysisInProgress. A started run cannot
// be cancelled.
func (s *Service) Schedule(delay time.Duration) error {
	if !s.Status.begin(startMessage) {
		return ErrAnalysisInProgress
	}
	telemetry.Info("analysis.scheduled", map[string]any{"delay": delay.String()})
	go s.runScheduled(delay)
	return nil
}

func (s *Service) runScheduled(delay time.Duration) {
	s.sleep(delay)

	// Two fixed processing stages; last_run advances after each so
	// pollers can see the worker making progress.
	s.sleep(s.StagePause)
	s.Status.markRun(s.now())
	s.sleep(s.StagePause)
	s.Status.markRun(s.now())

	if _, err := s.run(context.Background(), reports.TypeAuto, timedSuffix); err != nil {
		telemetry.Error("analysis.scheduled_failed", map[string]any{"error": err.Error()})
		s.Status.finish("Auto analysis failed: " + err.Error())
		return
	}
	s.Status.finish(endMessage)
}

func (s *Service) run(ctx context.Context, analysisType, filenameSuffix string) (results []FormResult, err error) {
	metrics.IncAnalysisStarted()
	start := time.Now()
	defer func() {
		if err != nil {
			metrics.IncAnalysisFailed()
			return
		}
		metrics.IncAnalysisCompleted()
		metrics.AddFormsAnalyzed(len(results))
		metrics.ObserveAnalysisDurationMs(float64(time.Since(start)) / float64(time.Millisecond))
	}()

	rules, err := s.Rules.Rules()
	if err != nil {
		return nil, err
	}

	forms, err := extract.Corpus(s.FormsDir)
	if err != nil {
		return nil, err
	}

	results = []FormResult{}
	for _, form := range forms {
		res := compliance.Evaluate(form.Text, rules)
		metrics.ObserveComplianceScore(res.Score)

		missing := make([]reports.MissingRule, 0, len(res.Missing))
		for _, rule := range res.Missing {
			entry := reports.MissingRule{
				Section:     rule.Section,
				Keywords:    rule.Keywords,
				Requirement: rule.Requirement,
			}
			entry.RiskLevel = s.Risk.Assess(entry)
			missing = append(missing, entry)
		}

		when := s.now()
		report := reports.Report{
			ReportID:        uuid.NewString(),
			Filename:        form.Filename + filenameSuffix,
			AnalysisDate:    when,
			AnalysisType:    analysisType,
			TotalRules:      res.TotalRules,
			MatchedCount:    len(res.Matched),
			MissingCount:    len(missing),
			ComplianceScore: res.Score,
			MissingRules:    missing,
		}
		if err = s.Repo.AppendReport(ctx, report); err != nil {
			return nil, err
		}

		if len(missing) > 0 {
			alert := reports.Alert{
				AlertID:      uuid.NewString(),
				Filename:     report.Filename,
				AlertDate:    when,
				MissingRules: missing,
			}
			if err = s.Repo.AppendAlert(ctx, alert); err != nil {
				return nil, err
			}
			metrics.IncAlertsRaised()
		}

		results = append(results, FormResult{
			ReportID:        report.ReportID,
			Filename:        report.Filename,
			ComplianceScore: report.ComplianceScore,
			MissingElements: missing,
		})
	}

	telemetry.Info("analysis.complete", map[string]any{
		"analysis_type": analysisType,
		"forms":         len(results),
		"rules":         len(rules),
	})
	return results, nil
}
