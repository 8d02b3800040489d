package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		CatalogPath: "testdata/catalog.yaml",
		Format:      "json",
		Limit:       3,
		Category:    "Breakfast",
	}, cfg)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("PANTRY_LIMIT", "7")
	t.Setenv("PANTRY_FORMAT", "text")

	cfg, err := LoadConfig(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Limit)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "Breakfast", cfg.Category)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	badFormat := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(badFormat, []byte("format: xml\n"), 0o600))
	_, err := LoadConfig(badFormat)
	assert.ErrorContains(t, err, "unknown format")

	badLimit := filepath.Join(dir, "limit.yaml")
	require.NoError(t, os.WriteFile(badLimit, []byte("limit: -1\n"), 0o600))
	_, err = LoadConfig(badLimit)
	assert.ErrorContains(t, err, "negative limit")

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
