package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/tleaf/barnview/internal/chamber"
)

// Snapshot represents the latest data available to the UI. The status and
// trend halves fail independently: a dead trend endpoint never blanks the
// status display, and vice versa.
type Snapshot struct {
	Status    chamber.Status
	HasStatus bool
	StatusAt  time.Time // time of the last successful status fetch

	Trend    *chamber.TrendSeries // nil when the controller has no history
	TrendErr error                // malformed payload or fetch failure

	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // consecutive status poll failures
}

// IsOffline returns true when the controller has been unreachable for
// multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The zero value is
// ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetStatus records the result of a status fetch. On error the previous
// status is kept untouched so the UI can keep rendering the last good
// snapshot while reporting the failure.
func (s *Store) SetStatus(status *chamber.Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastUpdated = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Status = *status
	s.snapshot.HasStatus = true
	s.snapshot.StatusAt = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// SetTrend records the result of a trend fetch. A nil series with a nil
// error means the controller has no history yet.
func (s *Store) SetTrend(trend *chamber.TrendSeries, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.TrendErr = err
	if err != nil {
		return
	}
	s.snapshot.Trend = cloneTrend(trend)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Trend = cloneTrend(s.snapshot.Trend)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTrend(trend *chamber.TrendSeries) *chamber.TrendSeries {
	if trend == nil {
		return nil
	}
	dup := trend.Clone()
	return &dup
}
