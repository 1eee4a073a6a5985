// Package memory provides in-memory implementations of the driven storage
// ports. Useful for tests and for running the engine over a seeded demo
// dataset without any database.
package memory

import (
	"context"
	"sync"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordSource = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordSource that
// also exposes a write path for the owning application. Snapshots are
// copy-on-read: mutations made after a snapshot is taken are invisible to
// queries already in flight.
type RecordStore struct {
	mu      sync.RWMutex
	records map[domain.EntityType][]domain.Record
}

// NewRecordStore creates an empty in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[domain.EntityType][]domain.Record),
	}
}

// Put inserts or replaces a record, matching on ID within its type.
func (s *RecordStore) Put(rec domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.records[rec.Type]
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
			return
		}
	}
	s.records[rec.Type] = append(list, rec)
}

// PutAll inserts or replaces a batch of records.
func (s *RecordStore) PutAll(recs []domain.Record) {
	for _, rec := range recs {
		s.Put(rec)
	}
}

// Delete removes a record by type and ID. Missing records are a no-op.
func (s *RecordStore) Delete(t domain.EntityType, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.records[t]
	for i := range list {
		if list[i].ID == id {
			s.records[t] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Len returns the total number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, list := range s.records {
		n += len(list)
	}
	return n
}

// Snapshot returns an immutable copy of the current record set.
func (s *RecordStore) Snapshot(_ context.Context) (driven.RecordSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make(map[domain.EntityType][]domain.Record, len(s.records))
	for t, list := range s.records {
		dup := make([]domain.Record, len(list))
		copy(dup, list)
		copied[t] = dup
	}
	return Snapshot(copied), nil
}

// Snapshot is a frozen map of records by type. It implements
// driven.RecordSnapshot and is the conventional way to hand a fixed
// record set to the planner in tests.
type Snapshot map[domain.EntityType][]domain.Record

// Records returns the records of one entity type.
func (s Snapshot) Records(t domain.EntityType) []domain.Record {
	return s[t]
}
