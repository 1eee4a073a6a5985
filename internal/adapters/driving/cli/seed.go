package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/storage/sqlite"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the SQLite database with the demo dataset",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(appConfig.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	records := seed.Records()
	for _, rec := range records {
		if err := store.SaveRecord(ctx, rec); err != nil {
			return err
		}
	}

	cmd.Printf("Seeded %d records into %s\n", len(records), store.Path())
	return nil
}
