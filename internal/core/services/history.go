package services

import (
	"context"
	"strings"
	"sync"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/logger"
)

// HistoryTracker maintains a bounded, deduplicated, most-recent-first list
// of past query strings. Re-recording an existing query moves it to the
// front instead of duplicating it. The tracker is owned by one search
// session; the optional store persists the list across sessions.
type HistoryTracker struct {
	mu      sync.Mutex
	cap     int
	entries []string
	store   driven.HistoryStore
}

// NewHistoryTracker creates a tracker bounded at cap entries. A
// non-positive cap falls back to domain.DefaultHistoryCap. The store may
// be nil, in which case history lives only for the session. A store load
// failure is logged and treated as an empty history.
func NewHistoryTracker(ctx context.Context, cap int, store driven.HistoryStore) *HistoryTracker {
	if cap <= 0 {
		cap = domain.DefaultHistoryCap
	}
	t := &HistoryTracker{cap: cap, store: store}

	if store != nil {
		entries, err := store.Load(ctx)
		if err != nil {
			logger.Warn("Loading search history failed: %v", err)
		} else {
			if len(entries) > cap {
				entries = entries[:cap]
			}
			t.entries = entries
		}
	}
	return t
}

// Record inserts a query at the front of the history. Blank queries are
// ignored. An already-present query moves to the front without growing
// the list; otherwise the oldest entry falls off once the cap is reached.
func (t *HistoryTracker) Record(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	t.mu.Lock()
	t.removeLocked(query)
	t.entries = append([]string{query}, t.entries...)
	if len(t.entries) > t.cap {
		t.entries = t.entries[:t.cap]
	}
	t.persistLocked()
	t.mu.Unlock()
}

// Recent returns a copy of the history, most recent first.
func (t *HistoryTracker) Recent() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Remove deletes one query from the history, if present.
func (t *HistoryTracker) Remove(query string) {
	query = strings.TrimSpace(query)

	t.mu.Lock()
	t.removeLocked(query)
	t.persistLocked()
	t.mu.Unlock()
}

// Clear empties the history.
func (t *HistoryTracker) Clear() {
	t.mu.Lock()
	t.entries = nil
	t.persistLocked()
	t.mu.Unlock()
}

// removeLocked deletes query from entries. Callers must hold t.mu.
func (t *HistoryTracker) removeLocked(query string) {
	for i, e := range t.entries {
		if e == query {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// persistLocked writes the current list through to the store, when one is
// configured. Persistence is best-effort: a failure is logged, never
// surfaced, since history carries no durability guarantee.
func (t *HistoryTracker) persistLocked() {
	if t.store == nil {
		return
	}
	if err := t.store.Save(context.Background(), t.entries); err != nil {
		logger.Warn("Persisting search history failed: %v", err)
	}
}
