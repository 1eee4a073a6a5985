package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         TEXT PRIMARY KEY,
	type       TEXT NOT NULL,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_type ON records(type);

CREATE TABLE IF NOT EXISTS search_history (
	position INTEGER PRIMARY KEY,
	query    TEXT NOT NULL
);
`

// Store is a SQLite-backed storage providing access to the record source
// and history store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.clinicsearch/data/clinic.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".clinicsearch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "clinic.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordSource returns a RecordSource interface backed by this store.
func (s *Store) RecordSource() driven.RecordSource {
	return &recordSource{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// SaveRecord inserts or replaces a record.
func (s *Store) SaveRecord(ctx context.Context, rec domain.Record) error {
	if !rec.Type.Valid() {
		return fmt.Errorf("save record %s: %w", rec.ID, domain.ErrUnsupportedType)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", rec.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, type, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET type = excluded.type, data = excluded.data, updated_at = excluded.updated_at`,
		rec.ID, string(rec.Type), string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving record %s: %w", rec.ID, err)
	}
	return nil
}

// DeleteRecord removes a record by ID. Missing records are a no-op.
func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	return nil
}

// recordSource adapts Store to driven.RecordSource.
type recordSource struct {
	store *Store
}

// Snapshot materialises the full record set in memory. The copy decouples
// in-flight queries from concurrent writes.
func (r *recordSource) Snapshot(ctx context.Context) (driven.RecordSnapshot, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT data FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	defer rows.Close()

	snapshot := make(map[domain.EntityType][]domain.Record)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		var rec domain.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		snapshot[rec.Type] = append(snapshot[rec.Type], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return mapSnapshot(snapshot), nil
}

// mapSnapshot implements driven.RecordSnapshot over a frozen map.
type mapSnapshot map[domain.EntityType][]domain.Record

func (s mapSnapshot) Records(t domain.EntityType) []domain.Record {
	return s[t]
}

// historyStore adapts Store to driven.HistoryStore.
type historyStore struct {
	store *Store
}

// Load returns the persisted history, most recent first.
func (h *historyStore) Load(ctx context.Context) ([]string, error) {
	rows, err := h.store.db.QueryContext(ctx, `SELECT query FROM search_history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return queries, nil
}

// Save replaces the persisted history inside a single transaction.
func (h *historyStore) Save(ctx context.Context, queries []string) error {
	tx, err := h.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM search_history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	for i, q := range queries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO search_history (position, query) VALUES (?, ?)`, i, q); err != nil {
			return fmt.Errorf("inserting history entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history: %w", err)
	}
	return nil
}
