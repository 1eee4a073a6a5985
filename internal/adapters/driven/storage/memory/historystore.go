package memory

import (
	"context"
	"sync"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// It keeps history for the process lifetime only.
type HistoryStore struct {
	mu      sync.RWMutex
	queries []string
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Load returns the stored history, most recent first.
func (s *HistoryStore) Load(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out, nil
}

// Save replaces the stored history.
func (s *HistoryStore) Save(_ context.Context, queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = make([]string, len(queries))
	copy(s.queries, queries)
	return nil
}
