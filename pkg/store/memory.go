package store

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. Useful for tests and for
// benchmark runs that don't need durable history.
type MemoryStore struct {
	mu   sync.RWMutex
	recs []Record
	byID map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]int)}
}

// Save inserts a record.
func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rec.ID] = len(s.recs)
	s.recs = append(s.recs, rec)
	return nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return s.recs[i], nil
}

// List returns the most recent records, newest first.
func (s *MemoryStore) List(ctx context.Context, dataset string, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, limit)
	for i := len(s.recs) - 1; i >= 0 && len(out) < limit; i-- {
		if dataset != "" && s.recs[i].Dataset != dataset {
			continue
		}
		out = append(out, s.recs[i])
	}
	return out, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
