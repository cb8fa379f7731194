package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	// Arrange
	files := NewFileStore()
	path := filepath.Join(t.TempDir(), "config.json")

	// Act
	require.NoError(t, files.WriteFile(path, []byte(`{"a": 1}`), 0o600))
	data, err := files.ReadFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ReadMissingFile(t *testing.T) {
	files := NewFileStore()

	data, err := files.ReadFile(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, data)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestFileStore_EnsureDir(t *testing.T) {
	files := NewFileStore()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, files.EnsureDir(dir))
	require.NoError(t, files.EnsureDir(dir), "existing directory is not an error")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_EnsureDirOverFile(t *testing.T) {
	files := NewFileStore()
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	assert.Error(t, files.EnsureDir(path))
}

func TestFileStore_WriteIntoMissingDir(t *testing.T) {
	files := NewFileStore()

	err := files.WriteFile(filepath.Join(t.TempDir(), "nope", "config.json"), []byte("{}"), 0o600)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
