package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := newTestStore(t)

	in := map[string]string{"id": "u1", "username": "ravi"}
	if err := fs.Put(KeyLoggedInUser, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out map[string]string
	if err := fs.Get(KeyLoggedInUser, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out["id"] != "u1" || out["username"] != "ravi" {
		t.Errorf("got %v, want %v", out, in)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	fs := newTestStore(t)

	var out []string
	if err := fs.Get("nope", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on missing key: got %v, want ErrNotFound", err)
	}
}

func TestFileStoreCorruptSnapshotDegrades(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, KeyWishlist+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	var out []string
	if err := fs.Get(KeyWishlist, &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on corrupt snapshot: got %v, want ErrNotFound", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	fs := newTestStore(t)

	if err := fs.Put(KeyChatCropID, "c9"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := fs.Delete(KeyChatCropID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var out string
	if err := fs.Get(KeyChatCropID, &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: got %v, want ErrNotFound", err)
	}

	// Deleting an absent key is fine.
	if err := fs.Delete(KeyChatCropID); err != nil {
		t.Errorf("Delete absent key: %v", err)
	}
}
