package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}
	ctx := context.Background()

	size, err := store.Save(ctx, "amd-1/report.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("Save() size = %d", size)
	}

	if err := store.Remove(ctx, "amd-1/report.txt"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
}

func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if err := store.Remove(context.Background(), "amd-9/missing.bin"); err != nil {
		t.Fatalf("Remove() on missing file error = %v", err)
	}
}

func TestSaveRejectsPathEscape(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root)
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if _, err := store.Save(context.Background(), "../outside.txt", strings.NewReader("x")); err == nil {
		t.Fatalf("Save() accepted a path escaping the root")
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(root), "outside.txt")); statErr == nil {
		t.Fatalf("file was written outside the storage root")
	}
}
