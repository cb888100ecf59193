package bakala

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Storage is the persistence facility the book snapshots itself to: a flat
// key-value store of UTF-8 text with no transactional guarantee across keys.
// Each ledger persists under its own key; a crash between two Set calls can
// leave the keys inconsistent, which is acceptable for a single-user,
// best-effort tool.
type Storage interface {
	// Get returns the text stored under key, or ok=false when the key is absent.
	Get(key string) (text string, ok bool, err error)
	// Set stores text under key, overwriting any previous value.
	Set(key, text string) error
}

// DirStore is a Storage keeping one file per key in a directory.
type DirStore struct {
	path string
}

// NewDirStore creates a store rooted at path. The directory is created on the
// first Set, not here.
func NewDirStore(path string) *DirStore {
	return &DirStore{path: path}
}

func (s *DirStore) file(key string) string {
	return filepath.Join(s.path, key+".json")
}

// Get implements Storage.
func (s *DirStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Storage.
func (s *DirStore) Set(key, text string) error {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("create-store-directory name=%q", s.path)
	}
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.path, err)
	}
	if err := os.WriteFile(s.file(key), []byte(text), 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Storage. Its zero value is not usable; use
// NewMemStore.
type MemStore struct {
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Get implements Storage.
func (s *MemStore) Get(key string) (string, bool, error) {
	text, ok := s.data[key]
	return text, ok, nil
}

// Set implements Storage.
func (s *MemStore) Set(key, text string) error {
	s.data[key] = text
	return nil
}
