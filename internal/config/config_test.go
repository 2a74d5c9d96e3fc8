package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLookahead, cfg.Lookahead)
	assert.Equal(t, DefaultVisibleCount, cfg.VisibleCount)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, `
db_path = "/tmp/clubhub.db"
catalog_path = "/tmp/spots.yaml"
lookahead = 2
visible_count = 4
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/clubhub.db", cfg.DBPath)
	assert.Equal(t, "/tmp/spots.yaml", cfg.CatalogPath)
	assert.Equal(t, 2, cfg.Lookahead)
	assert.Equal(t, 4, cfg.VisibleCount)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `db_path = "/tmp/file.db"`)
	t.Setenv(EnvDB, "/tmp/env.db")
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDB, "~/deck.db")
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "deck.db"), cfg.DBPath)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogLevel, "")

	tests := []struct {
		name string
		body string
	}{
		{"bad syntax", `lookahead = `},
		{"negative lookahead", `lookahead = -1`},
		{"zero lookahead", `lookahead = 0`},
		{"zero visible", `visible_count = 0`},
		{"zero batch", `batch_size = 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestPath_Env(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/clubhub.toml")
	assert.Equal(t, "/etc/clubhub.toml", Path())
}
