package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "data/bookings.json", cfg.Storage.Path)
}

func TestLoad_SQLiteBackend(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: sqlite\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "data/villabook.db", cfg.Storage.Path)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: redis\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("VILLABOOK_DATA", "/tmp/villabook-test.json")
	path := writeConfig(t, "storage:\n  backend: file\n  path: ${VILLABOOK_DATA}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/villabook-test.json", cfg.Storage.Path)
}

func TestLoad_BackupDefaults(t *testing.T) {
	path := writeConfig(t, "backup:\n  enabled: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, 24, cfg.Backup.IntervalHours)
	assert.Equal(t, "data/backups", cfg.Backup.Path)
	assert.Equal(t, 30, cfg.Backup.RetentionDays)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
