package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "nested", "config.toml")
	perm := os.FileMode(0600)

	err := AtomicWriteFile(filename, []byte("title = \"a\"\n"), perm, false)
	require.NoError(t, err)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "title = \"a\"\n", string(content))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, perm, info.Mode().Perm())

	t.Run("refuses to overwrite", func(t *testing.T) {
		err := AtomicWriteFile(filename, []byte("other"), perm, false)
		assert.ErrorIs(t, err, ErrExists)
	})

	t.Run("overwrites when asked", func(t *testing.T) {
		require.NoError(t, AtomicWriteFile(filename, []byte("other"), perm, true))
		content, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "other", string(content))

		entries, err := os.ReadDir(filepath.Dir(filename))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files must be cleaned up")
	})
}
