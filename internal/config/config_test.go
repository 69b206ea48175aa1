package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: site.db\nunits: kN_m_C\nlogging:\n  level: debug\n"), 0o644))
	t.Setenv("CSIAPI_LOGGING_FORMAT", "json")
	t.Setenv("CSIAPI_MODEL", "tower")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "site.db", cfg.Store)
	assert.Equal(t, "kN_m_C", cfg.Units)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "tower", cfg.Model)
	assert.Equal(t, "23.0.0", cfg.Version)
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CSIAPI_VERSION=21.0.0\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CSIAPI_VERSION") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "21.0.0", cfg.Version)
}

func TestMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("nope.yaml")
	assert.Error(t, err)
}
