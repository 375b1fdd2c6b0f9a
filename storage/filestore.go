package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// FileStore persists each key as one JSON snapshot file under dir.
// It is the local-machine stand-in for the browser's key-value store:
// whole-value writes, no partial updates. A mutex guards the store
// because view commands run on their own goroutines.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates dir if needed and returns a ready store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the snapshot for key into out. A missing or unreadable
// file yields ErrNotFound; a corrupt snapshot is discarded the same
// way, never surfaced as an error to the user.
func (fs *FileStore) Get(key string, out any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ErrNotFound
	}
	return nil
}

// Put serialises val and replaces the snapshot for key atomically
// (write to a temp file, then rename).
func (fs *FileStore) Put(key string, val any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("storage: marshal %q: %w", key, err)
	}

	tmp := fs.path(key) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	if err := os.Rename(tmp, fs.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: replace %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for key. Deleting an absent key is not
// an error.
func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %q: %w", key, err)
	}
	return nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}
