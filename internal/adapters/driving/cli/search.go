package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

var (
	searchLimit    int
	searchTypes    []string
	searchStatus   []string
	searchPriority []string
	searchFrom     string
	searchTo       string
	searchSortBy   string
	searchOrder    string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search clinic records",
	Long: `Performs a relevance-ranked search across all record types.
Fields are matched case-insensitively; exact matches rank above prefix
matches, which rank above substring matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultLimit, "maximum number of results")
	searchCmd.Flags().StringSliceVarP(&searchTypes, "type", "t", nil, "restrict to entity types (patient, appointment, doctor, procedure, document, health_plan)")
	searchCmd.Flags().StringSliceVar(&searchStatus, "status", nil, "restrict to status values")
	searchCmd.Flags().StringSliceVar(&searchPriority, "priority", nil, "restrict to priority values")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "start of date range (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "end of date range (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchSortBy, "sort", string(domain.SortByRelevance), "sort key (relevance, date, name)")
	searchCmd.Flags().StringVar(&searchOrder, "order", string(domain.SortDesc), "sort order (asc, desc)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Query:     args[0],
		Limit:     searchLimit,
		SortBy:    domain.SortBy(searchSortBy),
		SortOrder: domain.SortOrder(searchOrder),
	}

	filters, err := buildFilters()
	if err != nil {
		return err
	}
	opts.Filters = filters

	outcome := <-searchService.Search(context.Background(), opts)
	if outcome.Err != nil {
		return fmt.Errorf("search failed: %w", outcome.Err)
	}
	if outcome.Superseded {
		// Single submission, nothing can supersede it.
		return errors.New("search superseded unexpectedly")
	}

	if searchJSON {
		return outputJSON(cmd, outcome.Results)
	}
	return outputTable(cmd, outcome.Results)
}

// buildFilters converts the flag values into search filters.
func buildFilters() (domain.SearchFilters, error) {
	var f domain.SearchFilters

	for _, t := range searchTypes {
		f.Types = append(f.Types, domain.EntityType(t))
	}
	f.Status = searchStatus
	f.Priority = searchPriority

	if searchFrom != "" || searchTo != "" {
		r := &domain.DateRange{}
		if searchFrom != "" {
			ts, err := time.Parse("2006-01-02", searchFrom)
			if err != nil {
				return f, fmt.Errorf("invalid --from date: %w", err)
			}
			r.Start = &ts
		}
		if searchTo != "" {
			ts, err := time.Parse("2006-01-02", searchTo)
			if err != nil {
				return f, fmt.Errorf("invalid --to date: %w", err)
			}
			end := ts.Add(24*time.Hour - time.Nanosecond)
			r.End = &end
		}
		f.DateRange = r
	}
	return f, nil
}

func outputJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s (%s, score %d)\n", i+1, r.Title, r.Type, r.Score)
		if r.Subtitle != "" {
			cmd.Printf("      %s\n", r.Subtitle)
		}
		if r.Description != "" {
			cmd.Printf("      %s\n", r.Description)
		}
		cmd.Println()
	}
	return nil
}
