package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecheck/cli/config"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.Timeout())
	assert.Equal(t, "ko-KR", cfg.Analysis.Language)
	assert.Contains(t, cfg.Paths.PinDB, ".clausecheck")
}

func TestLoad_ReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".clausecheck")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
api:
  base_url: https://clause.example.com
  timeout_seconds: 30
analysis:
  language: en-US
`), 0644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://clause.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "en-US", cfg.Analysis.Language)
	// Untouched keys keep their defaults.
	assert.Contains(t, cfg.Paths.PinDB, "pins.db")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	cfg.API.BaseURL = "http://10.0.0.5:9000"
	cfg.API.TimeoutSeconds = 45
	require.NoError(t, cfg.Save())

	got, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", got.API.BaseURL)
	assert.Equal(t, 45, got.API.TimeoutSeconds)
}
