package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changed := make(chan struct{}, 8)
	w, err := New(path, 50*time.Millisecond, func() { changed <- struct{}{} }, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Start()
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("a: 2\n"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a change notification")
	}

	select {
	case <-changed:
		t.Fatalf("expected burst of writes to collapse into one notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	changed := make(chan struct{}, 1)
	w, err := New(path, 10*time.Millisecond, func() { changed <- struct{}{} }, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-changed:
		t.Fatalf("expected no notification for an unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}
