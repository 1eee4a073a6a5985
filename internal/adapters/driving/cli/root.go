// Package cli provides the cobra command surface for clinicsearch.
// Commands are thin: they parse flags, wire the search session from the
// configured record source, and format results.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/config/file"
	filesource "github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/storage/file"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/storage/memory"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driven/storage/sqlite"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driving"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/services"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/logger"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/seed"
)

var (
	flagVerbose     bool
	flagConfigPath  string
	flagDataDir     string
	flagRecordsFile string
	flagDemo        bool
)

// Shared session state, built once per invocation in preRun.
var (
	appConfig     configfile.Config
	searchService driving.SearchService
	teardown      []func() error
)

var rootCmd = &cobra.Command{
	Use:   "clinicsearch",
	Short: "Search clinic records from the terminal",
	Long: `clinicsearch is a relevance-ranked search engine over clinic records:
patients, appointments, doctors, procedures, documents and health plans.

Records come from a SQLite database, a watched JSON file, or a built-in
demo dataset.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config.toml")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "SQLite data directory")
	rootCmd.PersistentFlags().StringVar(&flagRecordsFile, "records", "", "JSON records file to search")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "search the built-in demo dataset")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// preRun loads configuration and builds the search session shared by all
// commands.
func preRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	cfg, err := configfile.Load(flagConfigPath)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagRecordsFile != "" {
		cfg.RecordsFile = flagRecordsFile
	}
	appConfig = cfg

	source, history, err := buildStores(cfg)
	if err != nil {
		return err
	}

	searchService = services.NewSearchService(source, history, services.Config{
		DebounceDelay: cfg.DebounceDelay(),
		HistoryCap:    cfg.HistoryCap,
		SuggestionCap: cfg.SuggestionCap,
	})
	teardown = append(teardown, searchService.Close)
	return nil
}

// buildStores selects the record source and history store for this run:
// demo dataset, JSON records file, or the SQLite database.
func buildStores(cfg configfile.Config) (driven.RecordSource, driven.HistoryStore, error) {
	if flagDemo {
		logger.Debug("Using in-memory demo dataset")
		store := memory.NewRecordStore()
		store.PutAll(seed.Records())
		return store, memory.NewHistoryStore(), nil
	}

	if cfg.RecordsFile != "" {
		logger.Debug("Using records file %s", cfg.RecordsFile)
		src, err := filesource.NewRecordSource(cfg.RecordsFile)
		if err != nil {
			return nil, nil, err
		}
		teardown = append(teardown, src.Close)
		return src, memory.NewHistoryStore(), nil
	}

	logger.Debug("Using SQLite store")
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	teardown = append(teardown, store.Close)
	return store.RecordSource(), store.HistoryStore(), nil
}

func shutdown() error {
	var firstErr error
	for i := len(teardown) - 1; i >= 0; i-- {
		if err := teardown[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	teardown = nil
	return firstErr
}
