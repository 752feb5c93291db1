package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsExternalEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")
	file := NewFile(path)

	stop := make(chan struct{})
	defer close(stop)
	changes, err := file.Watch(stop)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("titles: {}\n"), 0o644); err != nil {
		t.Fatalf("external write: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("external edit not reported")
	}
}

func TestWatchIgnoresOwnWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")
	file := NewFile(path)

	stop := make(chan struct{})
	defer close(stop)
	changes, err := file.Watch(stop)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := file.Write(map[int]string{1: "Work"}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-changes:
		t.Fatalf("own write reported as external")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")
	file := NewFile(path)

	stop := make(chan struct{})
	defer close(stop)
	changes, err := file.Watch(stop)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-changes:
		t.Fatalf("sibling file change reported")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchStops(t *testing.T) {
	dir := t.TempDir()
	file := NewFile(filepath.Join(dir, "state.yaml"))

	stop := make(chan struct{})
	changes, err := file.Watch(stop)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	close(stop)

	select {
	case _, ok := <-changes:
		if ok {
			t.Fatalf("expected channel close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watch did not stop")
	}
}
