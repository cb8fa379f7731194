package store

//go:generate mockgen -source=interfaces.go -destination=../mock/file_store_mock.go -package=mock

import "os"

// FileStore is the filesystem access layer used by the config loader.
// Implementations must report a missing file with an error matching
// [os.ErrNotExist] so callers can tell "no config yet" from real I/O failures.
type FileStore interface {
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile creates or truncates the file at path and writes data to it.
	WriteFile(path string, data []byte, perm os.FileMode) error
	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error
}
