package services

import "strings"

// Per-field score contributions. A field contributes exactly one of these
// depending on how it matches the query; the record score is the sum over
// all of its searchable fields.
const (
	scoreExact     = 100
	scorePrefix    = 50
	scoreSubstring = 20
)

// Score computes the relevance of a record's searchable fields against a
// query. Matching is case-insensitive. Empty fields contribute nothing.
// A zero score means the record does not match at all.
//
// Callers must not pass an empty query; the planner short-circuits empty
// queries before scoring.
func Score(query string, fields []string) int {
	q := strings.ToLower(query)
	total := 0
	for _, field := range fields {
		if field == "" {
			continue
		}
		total += scoreField(q, strings.ToLower(field))
	}
	return total
}

// scoreField scores a single lower-cased field against a lower-cased query.
func scoreField(query, field string) int {
	switch {
	case field == query:
		return scoreExact
	case strings.HasPrefix(field, query):
		return scorePrefix
	case strings.Contains(field, query):
		return scoreSubstring
	default:
		return 0
	}
}

// matchesPrefixOrSubstring reports whether candidate matches the partial
// query by prefix or substring, case-insensitively, together with the
// score of that match. Used by the suggestion path, which reuses the
// scorer's matching rules against record titles.
func matchesPrefixOrSubstring(partial, candidate string) (int, bool) {
	s := scoreField(strings.ToLower(partial), strings.ToLower(candidate))
	return s, s > 0
}
