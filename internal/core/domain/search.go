package domain

import (
	"strings"
	"time"
)

// SortBy selects the primary sort key for a result list.
type SortBy string

const (
	// SortByRelevance orders by relevance score.
	SortByRelevance SortBy = "relevance"
	// SortByDate orders by the entity's date field; dateless entities sort last.
	SortByDate SortBy = "date"
	// SortByName orders by result title.
	SortByName SortBy = "name"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// Default tunables for a search session.
const (
	// DefaultLimit is the result cap applied when SearchOptions.Limit is unset.
	DefaultLimit = 20
	// QuickSearchLimit caps synchronous inline search results.
	QuickSearchLimit = 5
	// DefaultHistoryCap bounds the search history length.
	DefaultHistoryCap = 10
	// DefaultSuggestionCap bounds the suggestion list length.
	DefaultSuggestionCap = 8
	// DefaultDebounceDelay is the quiet period before a query executes.
	DefaultDebounceDelay = 300 * time.Millisecond
)

// DateRange constrains matches to a time interval. Nil endpoints are
// unconstrained. A range with End before Start matches nothing.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether ts falls inside the range. An inverted range
// (End before Start) contains nothing.
func (r DateRange) Contains(ts time.Time) bool {
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return false
	}
	if r.Start != nil && ts.Before(*r.Start) {
		return false
	}
	if r.End != nil && ts.After(*r.End) {
		return false
	}
	return true
}

// SearchFilters narrows the record set before scoring. A nil or empty
// field means "no constraint on that dimension".
type SearchFilters struct {
	// Types restricts the search to specific entity types.
	Types []EntityType

	// DateRange restricts entities by their date field. Entities without
	// a date field are dropped when a range is set.
	DateRange *DateRange

	// Status restricts entities by status value.
	Status []string

	// Priority restricts entities by priority value.
	Priority []string
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Query is the free-text query string.
	Query string

	// Filters narrows the candidate set before scoring.
	Filters SearchFilters

	// Limit is the maximum number of results. Defaults to DefaultLimit.
	// Results always start at rank 1; there is no offset.
	Limit int

	// SortBy selects the primary sort key. Defaults to SortByRelevance.
	SortBy SortBy

	// SortOrder selects the direction. Defaults to SortDesc.
	SortOrder SortOrder
}

// Normalise fills in defaults and trims the query. It returns a copy so
// callers keep their original options untouched.
func (o SearchOptions) Normalise() SearchOptions {
	o.Query = strings.TrimSpace(o.Query)
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.SortBy == "" {
		o.SortBy = SortByRelevance
	}
	if o.SortOrder == "" {
		o.SortOrder = SortDesc
	}
	return o
}

// SearchResult represents a single ranked hit. Results are ephemeral:
// they are built per query and never persisted.
type SearchResult struct {
	// ID is the matched record's identifier.
	ID string

	// Type is the matched record's entity type.
	Type EntityType

	// Title is the human-readable headline for the hit.
	Title string

	// Subtitle is a short secondary line (may be empty).
	Subtitle string

	// Description is a longer explanatory line (may be empty).
	Description string

	// Score is the non-negative relevance score.
	Score int

	// Highlights lists the title substrings that literally matched the
	// query, in original casing. Empty when the match came from a
	// non-title field.
	Highlights []string

	// Record is a read-only reference to the matched source record.
	Record Record
}
