package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.DebounceDelay())
	assert.Equal(t, 20, cfg.DefaultLimit)
	assert.Equal(t, 10, cfg.HistoryCap)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
debounce_delay_ms = 150
default_limit = 50
records_file = "/tmp/records.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, cfg.DebounceDelay())
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.Equal(t, "/tmp/records.json", cfg.RecordsFile)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().HistoryCap, cfg.HistoryCap)
	assert.Equal(t, Default().SuggestionCap, cfg.SuggestionCap)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_delay_ms = ["), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.DebounceDelayMS = 200
	cfg.DataDir = "/var/lib/clinicsearch"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
