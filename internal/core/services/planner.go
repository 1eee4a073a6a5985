package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/logger"
)

// scoredRecord carries a result together with the sort keys that are not
// part of the public SearchResult shape.
type scoredRecord struct {
	result  domain.SearchResult
	date    time.Time
	hasDate bool
}

// Planner turns a search request and a record snapshot into a ranked,
// filtered, truncated result page. It is stateless; all inputs arrive per
// call, so a single Planner is safe for concurrent use.
type Planner struct{}

// NewPlanner creates a query planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan executes one query against a snapshot. Filters run before scoring,
// zero-score records are dropped, and the merged result list is sorted and
// truncated to opts.Limit. The returned list always starts at rank 1;
// there is no offset concept.
func (p *Planner) Plan(opts domain.SearchOptions, snapshot driven.RecordSnapshot) []domain.SearchResult {
	opts = opts.Normalise()
	if opts.Query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}
	}

	types := p.activeTypes(opts.Filters)
	logger.Debug("Planning query %q across %d types", opts.Query, len(types))

	// Each type's scan is independent and read-only, so they run in
	// parallel. The explicit sort below makes merge order irrelevant.
	scored := make([][]scoredRecord, len(types))
	var wg sync.WaitGroup
	for i, t := range types {
		wg.Add(1)
		go func(i int, t domain.EntityType) {
			defer wg.Done()
			scored[i] = p.scanType(t, opts, snapshot)
		}(i, t)
	}
	wg.Wait()

	var merged []scoredRecord
	for _, part := range scored {
		merged = append(merged, part...)
	}
	logger.Debug("Matched %d records before sorting", len(merged))

	p.sortResults(merged, opts.SortBy, opts.SortOrder)

	if len(merged) > opts.Limit {
		merged = merged[:opts.Limit]
	}

	results := make([]domain.SearchResult, len(merged))
	for i, sr := range merged {
		results[i] = sr.result
	}
	return results
}

// activeTypes resolves the entity-type set a query runs against. Unknown
// types in the filter contribute nothing; they are dropped here silently.
func (p *Planner) activeTypes(filters domain.SearchFilters) []domain.EntityType {
	if len(filters.Types) == 0 {
		return domain.AllEntityTypes()
	}
	types := make([]domain.EntityType, 0, len(filters.Types))
	for _, t := range filters.Types {
		if _, ok := adapterFor(t); ok {
			types = append(types, t)
		} else {
			logger.Warn("Ignoring unsupported entity type in filter: %q", t)
		}
	}
	return types
}

// scanType filters and scores all records of one entity type.
func (p *Planner) scanType(t domain.EntityType, opts domain.SearchOptions, snapshot driven.RecordSnapshot) []scoredRecord {
	adapter, ok := adapterFor(t)
	if !ok {
		return nil
	}

	var out []scoredRecord
	for _, rec := range snapshot.Records(t) {
		if !p.passesFilters(adapter, rec, opts.Filters) {
			continue
		}

		score := Score(opts.Query, adapter.fields(rec))
		if score == 0 {
			continue
		}

		title, subtitle, description := adapter.present(rec)
		date, hasDate := adapter.date(rec)
		out = append(out, scoredRecord{
			result: domain.SearchResult{
				ID:          rec.ID,
				Type:        t,
				Title:       title,
				Subtitle:    subtitle,
				Description: description,
				Score:       score,
				Highlights:  Highlight(title, opts.Query),
				Record:      rec,
			},
			date:    date,
			hasDate: hasDate,
		})
	}
	return out
}

// passesFilters applies the non-type filter dimensions. A record fails a
// dimension when the filter is set and the record either lacks the
// attribute or its value is not in the filter set.
func (p *Planner) passesFilters(adapter entityAdapter, rec domain.Record, f domain.SearchFilters) bool {
	if f.DateRange != nil {
		ts, ok := adapter.date(rec)
		if !ok || !f.DateRange.Contains(ts) {
			return false
		}
	}
	if len(f.Status) > 0 {
		v, ok := adapter.status(rec)
		if !ok || !containsString(f.Status, v) {
			return false
		}
	}
	if len(f.Priority) > 0 {
		v, ok := adapter.priority(rec)
		if !ok || !containsString(f.Priority, v) {
			return false
		}
	}
	return true
}

// sortResults orders the merged result list. All orderings are stable and
// carry a title tie-break so output is deterministic regardless of merge
// order.
func (p *Planner) sortResults(results []scoredRecord, sortBy domain.SortBy, order domain.SortOrder) {
	asc := order == domain.SortAsc

	switch sortBy {
	case domain.SortByName:
		sort.SliceStable(results, func(i, j int) bool {
			less := titleLess(results[i], results[j])
			if asc {
				return less
			}
			return titleLess(results[j], results[i])
		})

	case domain.SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			a, b := results[i], results[j]
			// Dateless records sort last regardless of order.
			if a.hasDate != b.hasDate {
				return a.hasDate
			}
			if !a.hasDate {
				return titleLess(a, b)
			}
			if !a.date.Equal(b.date) {
				if asc {
					return a.date.Before(b.date)
				}
				return a.date.After(b.date)
			}
			return titleLess(a, b)
		})

	default: // relevance
		sort.SliceStable(results, func(i, j int) bool {
			a, b := results[i], results[j]
			if a.result.Score != b.result.Score {
				if asc {
					return a.result.Score < b.result.Score
				}
				return a.result.Score > b.result.Score
			}
			return titleLess(a, b)
		})
	}
}

// titleLess compares results by title, case-insensitively, falling back to
// ID so equal titles still order deterministically.
func titleLess(a, b scoredRecord) bool {
	at := strings.ToLower(a.result.Title)
	bt := strings.ToLower(b.result.Title)
	if at != bt {
		return at < bt
	}
	return a.result.ID < b.result.ID
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
