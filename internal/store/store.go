// Package store persists the snapshot log. All implementations normalize
// records through the snapshot codec on read, so callers only ever see
// well-formed snapshots regardless of what is on disk.
package store

import (
	"sync"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

// Store is the durable snapshot log. ReadAll never fails: malformed persisted
// content yields an empty log. WriteAll replaces the whole log; Append reads,
// concatenates, writes, and returns the new log. A single active writer is
// assumed; the store provides no locking across processes.
type Store interface {
	ReadAll() []services.Snapshot
	WriteAll(log []services.Snapshot) error
	Append(snapshot services.Snapshot) ([]services.Snapshot, error)
	Clear() error
}

// MemoryStore keeps the log in process memory. Used by tests and as a
// fallback when no data directory is configured.
type MemoryStore struct {
	mu  sync.RWMutex
	log []services.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{log: []services.Snapshot{}}
}

func (s *MemoryStore) ReadAll() []services.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]services.Snapshot(nil), s.log...)
}

func (s *MemoryStore) WriteAll(log []services.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append([]services.Snapshot(nil), log...)
	return nil
}

func (s *MemoryStore) Append(snapshot services.Snapshot) ([]services.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, snapshot)
	return append([]services.Snapshot(nil), s.log...), nil
}

func (s *MemoryStore) Clear() error {
	return s.WriteAll(nil)
}

var _ Store = (*MemoryStore)(nil)
