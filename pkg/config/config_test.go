package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/pkg/goal"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.DebounceMs)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, goal.DefaultFarFuture, cfg.FarFutureDate())
	assert.Equal(t, "", cfg.GoalsDir)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "goals_dir: /srv/goals\ndebounce_ms: 500\nfar_future: 2030-01-01\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/goals", cfg.GoalsDir)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
	assert.Equal(t, time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.FarFutureDate())
}

func TestLoadMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("debounce_ms: [not a number\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadFillsPartialConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("debounce_ms: 100\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.DebounceMs)
	assert.Equal(t, goal.DefaultFarFuture, cfg.FarFutureDate())
}

func TestBadFarFutureFallsBack(t *testing.T) {
	cfg := Config{FarFuture: "soonish"}
	assert.Equal(t, goal.DefaultFarFuture, cfg.FarFutureDate())
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.DebounceMs)

	// second write refuses to clobber
	assert.Error(t, WriteDefault(dir))
}
