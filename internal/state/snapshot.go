package state

import (
	"sync"
	"time"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/validate"
)

// Snapshot holds the current validated configuration and its report.
// The watcher replaces the snapshot on reload while HTTP handlers read it,
// so access is guarded; a failed reload keeps the last good state.
type Snapshot struct {
	mu       sync.RWMutex
	cfg      *domain.Config
	report   *validate.Report
	loadedAt time.Time
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Update replaces the held configuration and report.
func (s *Snapshot) Update(cfg *domain.Config, report *validate.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	s.report = report
	s.loadedAt = time.Now()
}

// Config returns the current configuration, or an error when nothing has
// been loaded yet.
func (s *Snapshot) Config() (*domain.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cfg == nil {
		return nil, domain.ErrSnapshotEmpty
	}
	return s.cfg, nil
}

// Report returns the report of the last completed validation run.
func (s *Snapshot) Report() (*validate.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return nil, domain.ErrSnapshotEmpty
	}
	return s.report, nil
}

// LoadedAt returns the time of the last successful update.
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}

// Loaded reports whether a configuration has been stored.
func (s *Snapshot) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg != nil
}
