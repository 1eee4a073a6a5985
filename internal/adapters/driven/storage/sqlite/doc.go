// Package sqlite provides a SQLite-based implementation of the driven
// storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. It implements
// two store interfaces through a single database connection:
//
//   - RecordSource: Clinic record persistence and per-query snapshots
//   - HistoryStore: Search history persistence across sessions
//
// # Schema
//
// Records are stored as JSON documents keyed by ID and entity type; the
// history is a single ordered table. The schema is created on open.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode. Snapshots are materialised in memory at
// query start, so in-flight queries never observe later writes.
package sqlite
