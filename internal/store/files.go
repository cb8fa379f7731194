package store

import (
	"fmt"
	"os"
)

// osFileStore is the default [FileStore] backed by the local filesystem.
type osFileStore struct{}

// NewFileStore constructs a [FileStore] that works on the local filesystem.
func NewFileStore() FileStore {
	return osFileStore{}
}

// ReadFile reads the whole file at path. A missing file yields an error
// matching [os.ErrNotExist].
func (osFileStore) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	return data, nil
}

// WriteFile writes data to path, creating the file with perm if needed.
func (osFileStore) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("error writing file %s: %w", path, err)
	}

	return nil
}

// EnsureDir creates dir with all missing parents. An existing directory is
// not an error.
func (osFileStore) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	return nil
}
