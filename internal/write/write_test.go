package write

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".sol2ink.tmp", cfg.TempSuffix)
	assert.True(t, cfg.BackupExisting)
}

func TestWriteFileCreatesDirAndContent(t *testing.T) {
	root := t.TempDir()
	w := New(DefaultConfig())
	target := filepath.Join(root, "nested", "lib.rs")

	require.NoError(t, w.WriteFile(target, "pub mod lib {}"))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "pub mod lib {}", string(content))

	_, err = os.Stat(target + ".sol2ink.tmp")
	assert.True(t, os.IsNotExist(err), "temp file should not survive a successful write")
}

func TestWriteFileBacksUpExisting(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "lib.rs")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	w := New(DefaultConfig())
	require.NoError(t, w.WriteFile(target, "new"))

	backup, err := os.ReadFile(target + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "old", string(backup))

	current, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(current))
}

func TestWriteFileSkipsBackupWhenDisabled(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "lib.rs")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	w := New(Config{BackupExisting: false, TempSuffix: ".tmp"})
	require.NoError(t, w.WriteFile(target, "new"))

	_, err := os.Stat(target + ".bak")
	assert.True(t, os.IsNotExist(err))
}
