package driving

import (
	"context"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

// SearchOutcome is the settled result of one debounced search submission.
// Exactly one outcome is delivered per submission.
type SearchOutcome struct {
	// Generation is the query generation this outcome belongs to.
	// Generations increase monotonically per accepted query.
	Generation uint64

	// Results is the ranked result page. Nil when Superseded or Err is set.
	Results []domain.SearchResult

	// Superseded reports that a newer submission replaced this one before
	// it settled. Not an error: the caller simply drops the outcome.
	Superseded bool

	// Err carries a collaborator fault (e.g. record source unavailable).
	Err error
}

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search submits a debounced query. The returned channel delivers
	// exactly one SearchOutcome once the debounce window settles or the
	// submission is superseded.
	Search(ctx context.Context, opts domain.SearchOptions) <-chan SearchOutcome

	// QuickSearch performs a synchronous, undebounced search capped at
	// domain.QuickSearchLimit results. A nil entityType searches all types.
	QuickSearch(ctx context.Context, query string, entityType *domain.EntityType) ([]domain.SearchResult, error)

	// Suggest returns up to domain.DefaultSuggestionCap record titles
	// matching the partial query by prefix or substring.
	Suggest(ctx context.Context, partial string) ([]string, error)

	// RecentQueries returns the session's search history, most recent first.
	RecentQueries() []string

	// RemoveQuery deletes one query from the history.
	RemoveQuery(query string)

	// ClearHistory empties the search history.
	ClearHistory()

	// Close releases the session's resources and cancels pending work.
	Close() error
}
