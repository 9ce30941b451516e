package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 450, cfg.Gateway.LatencyMS)
	assert.Equal(t, 0.12, cfg.Gateway.FailureRate)
	assert.Equal(t, 450*time.Millisecond, cfg.Gateway.Latency())
	require.NoError(t, cfg.Validate())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.yaml")

	cfg := Default()
	cfg.Server.Addr = ":9090"
	cfg.Gateway.LatencyMS = 10
	cfg.Gateway.FailureRate = 0.5
	cfg.Gateway.Seed = 42
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_InvalidFailureRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway:\n  failure_rate: 1.5\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failure_rate")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
