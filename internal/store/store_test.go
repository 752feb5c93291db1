package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.yaml")
	return New(NewFile(path)), path
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := s.Title(1); ok {
		t.Fatalf("missing file should load no titles")
	}
	if s.Collapsed("window-content-1") {
		t.Fatalf("missing file should load no collapse flags")
	}
}

func TestDisplayTitleFallback(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.DisplayTitle(4); got != "Window 4" {
		t.Fatalf("got %q", got)
	}
}

func TestSetTitleRoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	if err := s.SetTitle(3, "  Research  "); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if got := s.DisplayTitle(3); got != "Research" {
		t.Fatalf("title not trimmed: %q", got)
	}

	// A fresh store over the same file sees the persisted value.
	reloaded := New(NewFile(path))
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.DisplayTitle(3); got != "Research" {
		t.Fatalf("persisted title wrong: %q", got)
	}
}

func TestSetTitleEmptyIsARealOverride(t *testing.T) {
	s, path := newTestStore(t)
	if err := s.SetTitle(3, "   "); err != nil {
		t.Fatalf("set title: %v", err)
	}
	title, ok := s.Title(3)
	if !ok || title != "" {
		t.Fatalf("empty override should be stored verbatim: %q ok=%v", title, ok)
	}
	if got := s.DisplayTitle(3); got != "" {
		t.Fatalf("cleared title should display empty, got %q", got)
	}

	reloaded := New(NewFile(path))
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.DisplayTitle(3); got != "" {
		t.Fatalf("cleared title should survive reload, got %q", got)
	}
}

func TestSectionKeys(t *testing.T) {
	if got := WindowSectionKey(12); got != "window-content-12" {
		t.Fatalf("got %q", got)
	}
	if got := GroupSectionKey(7); got != "group-content-7" {
		t.Fatalf("got %q", got)
	}
}

func TestCollapsedDefaultsExpanded(t *testing.T) {
	s, _ := newTestStore(t)
	if s.Collapsed("group-content-9") {
		t.Fatalf("unknown keys must report expanded")
	}
}

func TestSetCollapsedIsVisibleImmediately(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetCollapsed("group-content-7", true)
	if !s.Collapsed("group-content-7") {
		t.Fatalf("collapse flag should apply to memory synchronously")
	}
	s.SetCollapsed("group-content-7", false)
	if s.Collapsed("group-content-7") {
		t.Fatalf("expand should apply synchronously")
	}
}

func TestSetCollapsedSurvivesReload(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 50; i++ {
		s.SetCollapsed("group-content-5", true)
		if err := s.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
		if !s.Collapsed("group-content-5") {
			t.Fatalf("iteration %d: collapse flag reverted by reload", i)
		}

		s.SetCollapsed("group-content-5", false)
		if err := s.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
		if s.Collapsed("group-content-5") {
			t.Fatalf("iteration %d: expand reverted by reload", i)
		}
	}
}

func TestConcurrentTitleAndCollapseWrites(t *testing.T) {
	s, path := newTestStore(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.SetTitle(1, "Research"); err != nil {
			t.Errorf("set title: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		s.SetCollapsed("window-content-1", true)
	}()
	wg.Wait()

	// Whatever order the writes landed in, the file must hold both.
	reloaded := New(NewFile(path))
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.DisplayTitle(1); got != "Research" {
		t.Fatalf("title lost: %q", got)
	}
	if !reloaded.Collapsed("window-content-1") {
		t.Fatalf("collapse flag lost")
	}
}

func TestFileReadSkipsUnparsableKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	content := "titles:\n  \"3\": Research\n  \"junk\": Bad\ncollapsed:\n  window-content-3: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	file := NewFile(path)
	titles, err := file.ReadTitles()
	if err != nil {
		t.Fatalf("read titles: %v", err)
	}
	if len(titles) != 1 || titles[3] != "Research" {
		t.Fatalf("got %v", titles)
	}
	collapsed, err := file.ReadCollapsed()
	if err != nil {
		t.Fatalf("read collapsed: %v", err)
	}
	if !collapsed["window-content-3"] {
		t.Fatalf("got %v", collapsed)
	}
}
