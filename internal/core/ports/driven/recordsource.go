package driven

import (
	"context"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

// RecordSnapshot is an immutable, query-scoped view of the record source.
// A snapshot must not observe mutations made to the source after it was
// taken, so a single query always sees a consistent record set.
type RecordSnapshot interface {
	// Records returns the records of one entity type. The returned slice
	// is owned by the snapshot and must not be mutated by callers.
	// Unknown types yield an empty slice, never an error.
	Records(t domain.EntityType) []domain.Record
}

// RecordSource supplies the current collection of clinic records.
// Implementations may be static, file-backed, or database-backed.
// The engine only ever reads; no write path exists in this subsystem.
type RecordSource interface {
	// Snapshot returns an immutable view of the current record set.
	// It is called once at the start of each query execution.
	Snapshot(ctx context.Context) (RecordSnapshot, error)
}
