package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/storage/memory"
)

func TestHistoryTracker_MostRecentFirst(t *testing.T) {
	h := NewHistoryTracker(context.Background(), 10, nil)

	h.Record("maria")
	h.Record("cardiologia")
	h.Record("hemograma")

	assert.Equal(t, []string{"hemograma", "cardiologia", "maria"}, h.Recent())
}

func TestHistoryTracker_DuplicateMovesToFront(t *testing.T) {
	h := NewHistoryTracker(context.Background(), 10, nil)

	h.Record("maria")
	h.Record("cardiologia")
	h.Record("maria")

	recent := h.Recent()
	assert.Equal(t, []string{"maria", "cardiologia"}, recent)
	assert.Len(t, recent, 2, "re-recording must not grow history")
}

func TestHistoryTracker_CapBoundsLength(t *testing.T) {
	h := NewHistoryTracker(context.Background(), 3, nil)

	for _, q := range []string{"a", "b", "c", "d", "e"} {
		h.Record(q)
	}

	assert.Equal(t, []string{"e", "d", "c"}, h.Recent())
}

func TestHistoryTracker_IgnoresBlankQueries(t *testing.T) {
	h := NewHistoryTracker(context.Background(), 10, nil)

	h.Record("   ")
	h.Record("")

	assert.Empty(t, h.Recent())
}

func TestHistoryTracker_RemoveAndClear(t *testing.T) {
	h := NewHistoryTracker(context.Background(), 10, nil)

	h.Record("maria")
	h.Record("cardiologia")

	h.Remove("maria")
	assert.Equal(t, []string{"cardiologia"}, h.Recent())

	h.Remove("never recorded") // no-op
	assert.Equal(t, []string{"cardiologia"}, h.Recent())

	h.Clear()
	assert.Empty(t, h.Recent())
}

func TestHistoryTracker_PersistsThroughStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()

	h := NewHistoryTracker(ctx, 10, store)
	h.Record("maria")
	h.Record("cardiologia")

	// A new tracker over the same store sees the persisted history.
	h2 := NewHistoryTracker(ctx, 10, store)
	assert.Equal(t, []string{"cardiologia", "maria"}, h2.Recent())
}

func TestHistoryTracker_LoadRespectsCap(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	require.NoError(t, store.Save(ctx, []string{"a", "b", "c", "d"}))

	h := NewHistoryTracker(ctx, 2, store)
	assert.Equal(t, []string{"a", "b"}, h.Recent())
}
