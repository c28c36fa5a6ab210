package reports

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested report does not exist.
var ErrNotFound = errors.New("report not found")

// Repo defines persistence for the report and alert collections. Both
// collections are append-only: records are never mutated or deleted.
type Repo interface {
	AppendReport(ctx context.Context, report Report) error
	AppendAlert(ctx context.Context, alert Alert) error
	ListReports(ctx context.Context) ([]Report, error)
	ListAlerts(ctx context.Context) ([]Alert, error)
	GetReport(ctx context.Context, reportID string) (Report, error)
}
