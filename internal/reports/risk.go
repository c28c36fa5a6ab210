package reports

import (
	"math/rand"
	"sync"
	"time"
)

// Risk levels assigned to missing rules.
const (
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskUnknown = "Unknown"
)

// RiskAssessor assigns a severity to a missing rule. The interface
// exists so the placeholder below can be swapped for a real scoring
// model without touching the matcher or the aggregator.
type RiskAssessor interface {
	Assess(rule MissingRule) string
}

// RandomAssessor picks a uniformly random risk level. It is a stand-in
// for an actual risk model.
type RandomAssessor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAssessor returns a RandomAssessor seeded from the clock.
func NewRandomAssessor() *RandomAssessor {
	return NewRandomAssessorSeeded(time.Now().UnixNano())
}

// NewRandomAssessorSeeded returns a RandomAssessor with a fixed seed,
// for reproducible tests.
func NewRandomAssessorSeeded(seed int64) *RandomAssessor {
	return &RandomAssessor{rng: rand.New(rand.NewSource(seed))}
}

// Assess implements RiskAssessor.
func (a *RandomAssessor) Assess(MissingRule) string {
	levels := [...]string{RiskLow, RiskMedium, RiskHigh}
	a.mu.Lock()
	defer a.mu.Unlock()
	return levels[a.rng.Intn(len(levels))]
}
