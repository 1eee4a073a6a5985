package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

var quickType string

var quickCmd = &cobra.Command{
	Use:   "quick [query]",
	Short: "Synchronous inline search (top 5, no debounce)",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuick,
}

func init() {
	quickCmd.Flags().StringVarP(&quickType, "type", "t", "", "restrict to one entity type")
	rootCmd.AddCommand(quickCmd)
}

func runQuick(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	var entityType *domain.EntityType
	if quickType != "" {
		t := domain.EntityType(quickType)
		entityType = &t
	}

	results, err := searchService.QuickSearch(context.Background(), args[0], entityType)
	if err != nil {
		return fmt.Errorf("quick search failed: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	for i := range results {
		cmd.Printf("  [%d] %s (%s, score %d)\n", i+1, results[i].Title, results[i].Type, results[i].Score)
	}
	return nil
}
