package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

func TestRecordStore_PutReplacesByID(t *testing.T) {
	store := NewRecordStore()
	store.Put(domain.NewPatientRecord("pat-1", domain.Patient{Name: "Maria Santos"}))
	store.Put(domain.NewPatientRecord("pat-1", domain.Patient{Name: "Maria Santos Silva"}))

	assert.Equal(t, 1, store.Len())

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	recs := snap.Records(domain.EntityPatient)
	require.Len(t, recs, 1)
	assert.Equal(t, "Maria Santos Silva", recs[0].Patient.Name)
}

func TestRecordStore_Delete(t *testing.T) {
	store := NewRecordStore()
	store.PutAll([]domain.Record{
		domain.NewPatientRecord("pat-1", domain.Patient{Name: "Maria"}),
		domain.NewDoctorRecord("doc-1", domain.Doctor{Name: "Dra. Carla"}),
	})

	store.Delete(domain.EntityPatient, "pat-1")
	assert.Equal(t, 1, store.Len())

	// Deleting an unknown record is a no-op.
	store.Delete(domain.EntityPatient, "pat-1")
	store.Delete(domain.EntityAppointment, "apt-1")
	assert.Equal(t, 1, store.Len())
}

func TestRecordStore_SnapshotIsImmutable(t *testing.T) {
	store := NewRecordStore()
	store.Put(domain.NewPatientRecord("pat-1", domain.Patient{Name: "Maria"}))

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)

	store.Put(domain.NewPatientRecord("pat-2", domain.Patient{Name: "Ana"}))
	store.Delete(domain.EntityPatient, "pat-1")

	recs := snap.Records(domain.EntityPatient)
	require.Len(t, recs, 1, "snapshot must not see later mutations")
	assert.Equal(t, "pat-1", recs[0].ID)
}

func TestHistoryStore_RoundTrip(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	initial, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, initial)

	require.NoError(t, store.Save(ctx, []string{"cardiologia", "maria"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cardiologia", "maria"}, loaded)

	// The store keeps its own copy of the slice.
	loaded[0] = "mutated"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cardiologia", again[0])
}
