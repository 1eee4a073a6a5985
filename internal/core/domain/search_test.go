package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntityType_Valid(t *testing.T) {
	for _, entityType := range AllEntityTypes() {
		assert.True(t, entityType.Valid(), "expected %q to be valid", entityType)
	}
	assert.False(t, EntityType("invoice").Valid())
	assert.False(t, EntityType("").Valid())
}

func TestSearchOptions_NormaliseDefaults(t *testing.T) {
	opts := SearchOptions{Query: "  maria  "}.Normalise()

	assert.Equal(t, "maria", opts.Query)
	assert.Equal(t, DefaultLimit, opts.Limit)
	assert.Equal(t, SortByRelevance, opts.SortBy)
	assert.Equal(t, SortDesc, opts.SortOrder)
}

func TestSearchOptions_NormaliseKeepsExplicitValues(t *testing.T) {
	opts := SearchOptions{
		Query:     "maria",
		Limit:     3,
		SortBy:    SortByName,
		SortOrder: SortAsc,
	}.Normalise()

	assert.Equal(t, 3, opts.Limit)
	assert.Equal(t, SortByName, opts.SortBy)
	assert.Equal(t, SortAsc, opts.SortOrder)
}

func TestSearchOptions_NormaliseReturnsCopy(t *testing.T) {
	original := SearchOptions{Query: "  maria  "}
	_ = original.Normalise()

	assert.Equal(t, "  maria  ", original.Query)
	assert.Zero(t, original.Limit)
}

func TestDateRange_Contains(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}
	start := day(1)
	end := day(31)

	tests := []struct {
		name  string
		r     DateRange
		ts    time.Time
		wants bool
	}{
		{"open range contains anything", DateRange{}, day(15), true},
		{"inside both bounds", DateRange{Start: &start, End: &end}, day(15), true},
		{"on start bound", DateRange{Start: &start, End: &end}, start, true},
		{"on end bound", DateRange{Start: &start, End: &end}, end, true},
		{"before start", DateRange{Start: &start}, time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC), false},
		{"after end", DateRange{End: &end}, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"inverted range matches nothing", DateRange{Start: &end, End: &start}, day(15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wants, tc.r.Contains(tc.ts))
		})
	}
}
