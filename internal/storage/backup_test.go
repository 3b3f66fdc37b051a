package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupService_PerformBackup(t *testing.T) {
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "bookings.json")
	require.NoError(t, os.WriteFile(storagePath, []byte(`[]`), 0o644))

	logger := zerolog.Nop()
	svc := NewBackupService(storagePath, BackupConfig{
		Enabled: true,
		Path:    filepath.Join(dir, "backups"),
	}, &logger)

	require.NoError(t, svc.PerformBackup())

	entries, err := os.ReadDir(filepath.Join(dir, "backups"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "backup_")
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))

	data, err := os.ReadFile(filepath.Join(dir, "backups", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestBackupService_MissingStorageFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()
	svc := NewBackupService(filepath.Join(dir, "absent.json"), BackupConfig{
		Enabled: true,
		Path:    filepath.Join(dir, "backups"),
	}, &logger)

	assert.NoError(t, svc.PerformBackup())
}

func TestBackupService_CleanupOldBackups(t *testing.T) {
	dir := t.TempDir()
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.MkdirAll(backupDir, 0o755))

	oldFile := filepath.Join(backupDir, "backup_20200101_000000.json")
	newFile := filepath.Join(backupDir, "backup_recent.json")
	require.NoError(t, os.WriteFile(oldFile, []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(newFile, []byte(`[]`), 0o644))
	require.NoError(t, os.Chtimes(oldFile, time.Now().AddDate(0, 0, -60), time.Now().AddDate(0, 0, -60)))

	logger := zerolog.Nop()
	svc := NewBackupService(filepath.Join(dir, "bookings.json"), BackupConfig{
		Enabled:       true,
		Path:          backupDir,
		RetentionDays: 30,
	}, &logger)

	svc.CleanupOldBackups()

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}
