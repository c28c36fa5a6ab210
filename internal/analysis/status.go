package analysis

import (
	"sync"
	"time"
)

// Status is a point-in-time view of the scheduled-analysis lifecycle.
type Status struct {
	IsRunning     bool       `json:"is_running"`
	LastRun       *time.Time `json:"last_run"`
	StatusMessage *string    `json:"status_message"`
}

// StatusTracker owns the process-wide analysis status. All access goes
// through its methods; the mutex makes the running-flag check and set
// atomic so two scheduled workers can never start concurrently.
type StatusTracker struct {
	mu      sync.Mutex
	running bool
	lastRun *time.Time
	message *string
}

// NewStatusTracker returns an idle tracker.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{}
}

// Snapshot returns a copy of the current status.
func (t *StatusTracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	status := Status{IsRunning: t.running}
	if t.lastRun != nil {
		lastRun := *t.lastRun
		status.LastRun = &lastRun
	}
	if t.message != nil {
		message := *t.message
		status.StatusMessage = &message
	}
	return status
}

// ClearMessage clears the status message without touching the running
// flag or last-run timestamp.
func (t *StatusTracker) ClearMessage() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = nil
}

// begin transitions Idle→Running and records the start message. It
// reports false, changing nothing, when a run is already active.
func (t *StatusTracker) begin(message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return false
	}
	t.running = true
	t.message = &message
	return true
}

// markRun records a run timestamp while the worker is mid-flight.
func (t *StatusTracker) markRun(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastRun = &at
}

// finish transitions Running→Idle and records the end message.
func (t *StatusTracker) finish(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.message = &message
}
