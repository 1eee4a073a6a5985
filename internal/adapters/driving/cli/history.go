package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the search history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent queries, most recent first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if searchService == nil {
			return errors.New("search service not configured")
		}
		queries := searchService.RecentQueries()
		if len(queries) == 0 {
			cmd.Println("No search history.")
			return nil
		}
		for i, q := range queries {
			cmd.Printf("  %2d. %s\n", i+1, q)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if searchService == nil {
			return errors.New("search service not configured")
		}
		searchService.ClearHistory()
		cmd.Println("Search history cleared.")
		return nil
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove [query]",
	Short: "Remove one query from the history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchService == nil {
			return errors.New("search service not configured")
		}
		searchService.RemoveQuery(args[0])
		cmd.Println("Removed.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	rootCmd.AddCommand(historyCmd)
}
