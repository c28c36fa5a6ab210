package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	reportsFile = "reports.json"
	alertsFile  = "alerts.json"
)

// JSONRepo stores reports and alerts as two JSON array files under a
// data directory. Every append loads the whole collection, appends in
// memory, and rewrites the file; the mutex serializes writers so
// concurrent manual and scheduled runs cannot lose updates. A missing or
// empty file reads as an empty collection; malformed content is an
// error, never silently empty.
type JSONRepo struct {
	mu      sync.Mutex
	dataDir string
}

// NewJSONRepo constructs a JSONRepo rooted at dataDir, creating the
// directory if needed.
func NewJSONRepo(dataDir string) (*JSONRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONRepo{dataDir: dataDir}, nil
}

// AppendReport appends a report to the reports collection.
func (r *JSONRepo) AppendReport(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []Report
	if err := r.readCollection(reportsFile, &all); err != nil {
		return err
	}
	all = append(all, report)
	return r.writeCollection(reportsFile, all)
}

// AppendAlert appends an alert to the alerts collection.
func (r *JSONRepo) AppendAlert(ctx context.Context, alert Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []Alert
	if err := r.readCollection(alertsFile, &all); err != nil {
		return err
	}
	all = append(all, alert)
	return r.writeCollection(alertsFile, all)
}

// ListReports returns every persisted report in append order.
func (r *JSONRepo) ListReports(ctx context.Context) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []Report
	if err := r.readCollection(reportsFile, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// ListAlerts returns every persisted alert in append order.
func (r *JSONRepo) ListAlerts(ctx context.Context) ([]Alert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []Alert
	if err := r.readCollection(alertsFile, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetReport returns a single report by its identifier.
func (r *JSONRepo) GetReport(ctx context.Context, reportID string) (Report, error) {
	all, err := r.ListReports(ctx)
	if err != nil {
		return Report{}, err
	}
	for _, report := range all {
		if report.ReportID == reportID {
			return report, nil
		}
	}
	return Report{}, ErrNotFound
}

func (r *JSONRepo) readCollection(name string, out any) error {
	path := filepath.Join(r.dataDir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (r *JSONRepo) writeCollection(name string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(r.dataDir, name)
	tmp, err := os.CreateTemp(r.dataDir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
