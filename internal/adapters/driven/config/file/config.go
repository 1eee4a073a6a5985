// Package file provides the TOML configuration for the clinicsearch
// engine. Configuration is read once at startup; missing files yield the
// defaults rather than an error.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

// Config holds the engine tunables.
type Config struct {
	// DebounceDelayMS is the quiet period before a query executes,
	// in milliseconds.
	DebounceDelayMS int `toml:"debounce_delay_ms"`

	// DefaultLimit is the result cap applied when a query sets none.
	DefaultLimit int `toml:"default_limit"`

	// HistoryCap bounds the search history length.
	HistoryCap int `toml:"history_cap"`

	// SuggestionCap bounds the suggestion list length.
	SuggestionCap int `toml:"suggestion_cap"`

	// DataDir is where the SQLite database lives. Empty selects the
	// per-user default.
	DataDir string `toml:"data_dir"`

	// RecordsFile points at a JSON records file for the file-backed
	// record source. Empty disables it.
	RecordsFile string `toml:"records_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DebounceDelayMS: int(domain.DefaultDebounceDelay / time.Millisecond),
		DefaultLimit:    domain.DefaultLimit,
		HistoryCap:      domain.DefaultHistoryCap,
		SuggestionCap:   domain.DefaultSuggestionCap,
	}
}

// DebounceDelay returns the configured delay as a duration.
func (c Config) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceDelayMS) * time.Millisecond
}

// Load reads the configuration from path. An empty path selects
// ~/.clinicsearch/config.toml. A missing file returns the defaults;
// unreadable or malformed files are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".clinicsearch", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
