package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/storage/memory"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
)

// countingSource wraps a fixed snapshot and counts Snapshot calls.
type countingSource struct {
	snapshot memory.Snapshot
	calls    atomic.Int64
	err      error
}

func (s *countingSource) Snapshot(_ context.Context) (driven.RecordSnapshot, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func newTestService(t *testing.T, source driven.RecordSource) *SearchService {
	t.Helper()
	svc := NewSearchService(source, nil, Config{DebounceDelay: 5 * time.Millisecond})
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestSearchService_EmptyQueryNeverTouchesSource(t *testing.T) {
	source := &countingSource{snapshot: testSnapshot(t)}
	svc := newTestService(t, source)

	outcome := <-svc.Search(context.Background(), domain.SearchOptions{Query: "   "})

	require.NoError(t, outcome.Err)
	assert.Empty(t, outcome.Results)
	assert.Equal(t, int64(0), source.calls.Load(), "empty query must not take a snapshot")
	assert.Empty(t, svc.RecentQueries(), "empty query must not enter history")
}

func TestSearchService_SearchRecordsHistory(t *testing.T) {
	source := &countingSource{snapshot: testSnapshot(t)}
	svc := newTestService(t, source)

	outcome := <-svc.Search(context.Background(), domain.SearchOptions{Query: "maria"})

	require.NoError(t, outcome.Err)
	require.NotEmpty(t, outcome.Results)
	assert.Equal(t, []string{"maria"}, svc.RecentQueries())
}

func TestSearchService_SupersededQueryNotRecorded(t *testing.T) {
	source := &countingSource{snapshot: testSnapshot(t)}
	svc := newTestService(t, source)

	ctx := context.Background()
	chOld := svc.Search(ctx, domain.SearchOptions{Query: "maria"})
	chNew := svc.Search(ctx, domain.SearchOptions{Query: "cardiologia"})

	oldOutcome := <-chOld
	assert.True(t, oldOutcome.Superseded)

	newOutcome := <-chNew
	require.NoError(t, newOutcome.Err)

	assert.Equal(t, []string{"cardiologia"}, svc.RecentQueries(),
		"only the accepted query enters history")
	assert.Equal(t, int64(1), source.calls.Load(), "one snapshot per accepted query")
}

func TestSearchService_SourceFailurePropagates(t *testing.T) {
	source := &countingSource{err: domain.ErrSourceUnavailable}
	svc := newTestService(t, source)

	outcome := <-svc.Search(context.Background(), domain.SearchOptions{Query: "maria"})

	require.Error(t, outcome.Err)
	assert.True(t, errors.Is(outcome.Err, domain.ErrSourceUnavailable))
}

func TestSearchService_QuickSearchCapsAtFive(t *testing.T) {
	snapshot := memory.Snapshot{}
	var patients []domain.Record
	for _, name := range []string{
		"Ana Silva", "Beatriz Silva", "Carla Silva", "Daniela Silva",
		"Elisa Silva", "Fernanda Silva", "Gabriela Silva",
	} {
		patients = append(patients, domain.NewPatientRecord("pat-"+name, domain.Patient{Name: name}))
	}
	snapshot[domain.EntityPatient] = patients
	svc := newTestService(t, &countingSource{snapshot: snapshot})

	results, err := svc.QuickSearch(context.Background(), "silva", nil)

	require.NoError(t, err)
	assert.Len(t, results, domain.QuickSearchLimit)
}

func TestSearchService_QuickSearchTypeRestriction(t *testing.T) {
	svc := newTestService(t, &countingSource{snapshot: testSnapshot(t)})

	entityType := domain.EntityDoctor
	results, err := svc.QuickSearch(context.Background(), "silva", &entityType)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, domain.EntityDoctor, r.Type)
	}
}

func TestSearchService_QuickSearchEmptyQuery(t *testing.T) {
	source := &countingSource{snapshot: testSnapshot(t)}
	svc := newTestService(t, source)

	results, err := svc.QuickSearch(context.Background(), "  ", nil)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, int64(0), source.calls.Load())
}

func TestSearchService_QuickSearchBypassesHistory(t *testing.T) {
	svc := newTestService(t, &countingSource{snapshot: testSnapshot(t)})

	_, err := svc.QuickSearch(context.Background(), "maria", nil)

	require.NoError(t, err)
	assert.Empty(t, svc.RecentQueries())
}

func TestSearchService_SuggestRanksAndCaps(t *testing.T) {
	snapshot := memory.Snapshot{
		domain.EntityPatient: {
			domain.NewPatientRecord("p1", domain.Patient{Name: "Maria Santos Silva"}),
			domain.NewPatientRecord("p2", domain.Patient{Name: "Mariana Lopes"}),
			domain.NewPatientRecord("p3", domain.Patient{Name: "Ana Maria Costa"}),
		},
		domain.EntityProcedure: {
			domain.NewProcedureRecord("pr1", domain.Procedure{Name: "Maria"}),
		},
	}
	svc := newTestService(t, &countingSource{snapshot: snapshot})

	titles, err := svc.Suggest(context.Background(), "maria")

	require.NoError(t, err)
	// Exact title first, then prefix matches, then substring matches.
	assert.Equal(t, []string{"Maria", "Maria Santos Silva", "Mariana Lopes", "Ana Maria Costa"}, titles)
}

func TestSearchService_SuggestCap(t *testing.T) {
	snapshot := memory.Snapshot{}
	var recs []domain.Record
	names := []string{
		"Maria A", "Maria B", "Maria C", "Maria D", "Maria E",
		"Maria F", "Maria G", "Maria H", "Maria I", "Maria J",
	}
	for i, n := range names {
		recs = append(recs, domain.NewPatientRecord(string(rune('a'+i)), domain.Patient{Name: n}))
	}
	snapshot[domain.EntityPatient] = recs
	svc := newTestService(t, &countingSource{snapshot: snapshot})

	titles, err := svc.Suggest(context.Background(), "maria")

	require.NoError(t, err)
	assert.Len(t, titles, domain.DefaultSuggestionCap)
}

func TestSearchService_SuggestEmptyPartial(t *testing.T) {
	source := &countingSource{snapshot: testSnapshot(t)}
	svc := newTestService(t, source)

	titles, err := svc.Suggest(context.Background(), " ")

	require.NoError(t, err)
	assert.Empty(t, titles)
	assert.Equal(t, int64(0), source.calls.Load())
}

func TestSearchService_HistoryOperations(t *testing.T) {
	svc := newTestService(t, &countingSource{snapshot: testSnapshot(t)})

	ctx := context.Background()
	<-svc.Search(ctx, domain.SearchOptions{Query: "maria"})
	<-svc.Search(ctx, domain.SearchOptions{Query: "cardiologia"})

	assert.Equal(t, []string{"cardiologia", "maria"}, svc.RecentQueries())

	svc.RemoveQuery("maria")
	assert.Equal(t, []string{"cardiologia"}, svc.RecentQueries())

	svc.ClearHistory()
	assert.Empty(t, svc.RecentQueries())
}
