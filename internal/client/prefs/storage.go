// Package prefs implements the client-local preference stores: the
// visited-site set, per-site ratings, theme mode and language. Each
// store owns one namespaced key in a key-value Storage and round-trips
// its entire serialized state on every change. Storage failures degrade
// to default state and are logged, never surfaced to the UI.
package prefs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by Storage.Get when the key has never been
// written.
var ErrNotFound = errors.New("prefs: key not found")

// Storage is a key-value blob store scoped to one client installation
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FileStorage persists each key as a file under a directory
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the blob stored under key
func (s *FileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Set writes the blob atomically (temp file plus rename)
func (s *FileStorage) Set(ctx context.Context, key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// MemoryStorage is an in-memory Storage for tests
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes every Set return an error, for failure-path tests
	FailWrites bool
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string][]byte{}}
}

// Get reads the blob stored under key
func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key]; ok {
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	}
	return nil, ErrNotFound
}

// Set stores the blob under key
func (s *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if s.FailWrites {
		return errors.New("prefs: write failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// Put seeds a raw value, bypassing FailWrites; used by tests
func (s *MemoryStorage) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
