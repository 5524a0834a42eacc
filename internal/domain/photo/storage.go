package photo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage is the blob store holding uploaded bytes.
type Storage interface {
	// EnsureDir creates the storage directory and its parents when missing.
	EnsureDir() error
	// Write stores r under name, replacing any existing file, and returns
	// the resulting path.
	Write(name string, r io.Reader) (string, error)
}

// LocalStorage keeps files in a single directory on local disk.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}
	return nil
}

// Write does not remove a partially written file on failure.
func (s *LocalStorage) Write(name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	return path, nil
}
