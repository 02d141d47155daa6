// Package state holds the latest daemon snapshot shared between the
// background poller (writer) and the render loop (reader). The poller
// replaces the snapshot wholesale on success; on failure the previous data
// is kept and the error recorded, so the UI always has something to show.
package state

import (
	"fmt"
	"sync"
	"time"

	"aria2top/internal/aria2"
)

// Snapshot is the latest data available to the UI.
type Snapshot struct {
	Downloads           []aria2.Download
	Stat                aria2.GlobalStat
	HasStat             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports whether the daemon has been unreachable for multiple
// polls in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(stat *aria2.GlobalStat, downloads []aria2.Download, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Downloads = cloneDownloads(downloads)
	if stat != nil {
		s.snapshot.Stat = *stat
		s.snapshot.HasStat = true
	} else {
		s.snapshot.HasStat = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Downloads = cloneDownloads(s.snapshot.Downloads)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneDownloads(items []aria2.Download) []aria2.Download {
	if len(items) == 0 {
		return nil
	}
	dup := make([]aria2.Download, len(items))
	copy(dup, items)
	return dup
}
