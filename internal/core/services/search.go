package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driving"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Config tunes a search session. The zero value selects the defaults.
type Config struct {
	// DebounceDelay is the quiet period before a submitted query runs.
	DebounceDelay time.Duration

	// HistoryCap bounds the search history length.
	HistoryCap int

	// SuggestionCap bounds the suggestion list length.
	SuggestionCap int
}

// SearchService is one interactive search session over a record source.
// It wires the debounce coordinator, the query planner, and the history
// tracker behind the driving port.
type SearchService struct {
	source        driven.RecordSource
	planner       *Planner
	debouncer     *Debouncer
	history       *HistoryTracker
	suggestionCap int
}

// NewSearchService creates a search session. The history store is
// optional (can be nil).
func NewSearchService(source driven.RecordSource, historyStore driven.HistoryStore, cfg Config) *SearchService {
	s := &SearchService{
		source:        source,
		planner:       NewPlanner(),
		history:       NewHistoryTracker(context.Background(), cfg.HistoryCap, historyStore),
		suggestionCap: cfg.SuggestionCap,
	}
	if s.suggestionCap <= 0 {
		s.suggestionCap = domain.DefaultSuggestionCap
	}
	s.debouncer = NewDebouncer(cfg.DebounceDelay, s.runQuery)
	return s
}

// Search submits a debounced query. Exactly one outcome arrives on the
// returned channel: results, a superseded marker, or a collaborator error.
func (s *SearchService) Search(ctx context.Context, opts domain.SearchOptions) <-chan driving.SearchOutcome {
	return s.debouncer.Submit(ctx, opts)
}

// QuickSearch performs a synchronous, undebounced search for inline and
// autocomplete use. Results are capped at domain.QuickSearchLimit and do
// not enter the search history.
func (s *SearchService) QuickSearch(ctx context.Context, query string, entityType *domain.EntityType) ([]domain.SearchResult, error) {
	opts := domain.SearchOptions{
		Query: query,
		Limit: domain.QuickSearchLimit,
	}
	if entityType != nil {
		opts.Filters.Types = []domain.EntityType{*entityType}
	}

	opts = opts.Normalise()
	opts.Limit = domain.QuickSearchLimit
	if opts.Query == "" {
		return []domain.SearchResult{}, nil
	}

	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("quick search: %w", err)
	}
	return s.planner.Plan(opts, snapshot), nil
}

// Suggest derives live suggestions from the titles of all current records,
// reusing the scorer's prefix/substring rules. Suggestions are ranked by
// match strength, then title, and capped.
func (s *SearchService) Suggest(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return []string{}, nil
	}

	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	type suggestion struct {
		title string
		score int
	}
	var matches []suggestion
	seen := make(map[string]bool)

	for _, t := range domain.AllEntityTypes() {
		adapter, ok := adapterFor(t)
		if !ok {
			continue
		}
		for _, rec := range snapshot.Records(t) {
			title, _, _ := adapter.present(rec)
			if title == "" || seen[title] {
				continue
			}
			if score, ok := matchesPrefixOrSubstring(partial, title); ok {
				seen[title] = true
				matches = append(matches, suggestion{title: title, score: score})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return strings.ToLower(matches[i].title) < strings.ToLower(matches[j].title)
	})

	if len(matches) > s.suggestionCap {
		matches = matches[:s.suggestionCap]
	}

	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = m.title
	}
	return titles, nil
}

// RecentQueries returns the session's search history, most recent first.
func (s *SearchService) RecentQueries() []string {
	return s.history.Recent()
}

// RemoveQuery deletes one query from the history.
func (s *SearchService) RemoveQuery(query string) {
	s.history.Remove(query)
}

// ClearHistory empties the search history.
func (s *SearchService) ClearHistory() {
	s.history.Clear()
}

// Close cancels pending work and ends the session.
func (s *SearchService) Close() error {
	return s.debouncer.Close()
}

// runQuery executes one accepted query: snapshot, plan, record history.
// The empty-query check runs before the snapshot is taken, so an empty
// submission never touches the record source.
func (s *SearchService) runQuery(ctx context.Context, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	opts = opts.Normalise()
	logger.Debug("Query: %q, limit: %d, sort: %s/%s", opts.Query, opts.Limit, opts.SortBy, opts.SortOrder)

	if opts.Query == "" {
		return []domain.SearchResult{}, nil
	}

	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		logger.Warn("Snapshot failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	results := s.planner.Plan(opts, snapshot)
	logger.Info("Final results: %d", len(results))

	s.history.Record(opts.Query)
	return results, nil
}
