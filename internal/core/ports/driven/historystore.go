package driven

import "context"

// HistoryStore persists the search history beyond the session lifetime.
// The history tracker owns ordering and deduplication; the store only
// round-trips the ordered list (most recent first).
type HistoryStore interface {
	// Load returns the persisted history, most recent first.
	// An empty store returns an empty slice, not an error.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the persisted history with queries, most recent first.
	Save(ctx context.Context, queries []string) error
}
