package reports

import (
	"context"
	"sync"
)

// MemoryRepo stores reports and alerts in memory and is safe for
// concurrent use. Used in tests and when no data directory or database
// is configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	reports []Report
	alerts  []Alert
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// AppendReport stores the report.
func (r *MemoryRepo) AppendReport(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
	return nil
}

// AppendAlert stores the alert.
func (r *MemoryRepo) AppendAlert(ctx context.Context, alert Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

// ListReports returns all reports in append order.
func (r *MemoryRepo) ListReports(ctx context.Context) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

// ListAlerts returns all alerts in append order.
func (r *MemoryRepo) ListAlerts(ctx context.Context) ([]Alert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Alert, len(r.alerts))
	copy(out, r.alerts)
	return out, nil
}

// GetReport returns a report by its ID.
func (r *MemoryRepo) GetReport(ctx context.Context, reportID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, report := range r.reports {
		if report.ReportID == reportID {
			return report, nil
		}
	}
	return Report{}, ErrNotFound
}
