package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Suggest record titles matching a partial query",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	titles, err := searchService.Suggest(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if len(titles) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}
	for _, title := range titles {
		cmd.Println(" ", title)
	}
	return nil
}
