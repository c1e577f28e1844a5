package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	err := WriteAtomic(path, map[string]string{"nombre": "Muñoz"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(string(data), "\n"))
	require.Contains(t, string(data), "Muñoz")
	require.Contains(t, string(data), "    \"nombre\"")

	// The temporary file must not survive a successful replace.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteAtomicOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")

	require.NoError(t, WriteAtomic(path, map[string]int{"a": 1}))
	require.NoError(t, WriteAtomic(path, map[string]int{"a": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"a": 2`)
}

func TestWriteAtomicRenameFailureRemovesTemp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// The target path is an existing directory, so the final rename fails.
	target := filepath.Join(dir, "blocked")
	require.NoError(t, os.Mkdir(target, 0o755))

	err := WriteAtomic(target, map[string]int{"a": 1})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind after failed rename")
}

func TestBackupCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o644))

	BackupCorrupt(path)

	data, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	require.Equal(t, "{garbage", string(data))
}

func TestBackupCorruptOverwritesPriorBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path+BackupSuffix, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("new"), 0o644))

	BackupCorrupt(path)

	data, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestBackupCorruptMissingFileIsNoop(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")

	BackupCorrupt(path)

	_, err := os.Stat(path + BackupSuffix)
	require.True(t, os.IsNotExist(err))
}
