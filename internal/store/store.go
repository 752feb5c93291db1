// Package store holds the two pieces of user state that outlive a render:
// window-title overrides and section collapse flags. Both live in memory and
// are flushed whole to a YAML state file.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/tab-sidebar/internal/logging"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
)

const (
	windowSectionPrefix = "window-content-"
	groupSectionPrefix  = "group-content-"
)

// WindowSectionKey derives the persistence key for a window's content region.
func WindowSectionKey(windowID int) string {
	return windowSectionPrefix + strconv.Itoa(windowID)
}

// GroupSectionKey derives the persistence key for a group's content region.
func GroupSectionKey(groupID int) string {
	return groupSectionPrefix + strconv.Itoa(groupID)
}

// Store is the in-memory user-state store. Constructed once, loaded before
// the first render, mutated only through its methods.
type Store struct {
	file *File

	mu        sync.Mutex
	titles    map[int]string
	collapsed map[string]bool
}

// New creates an empty store backed by the given file.
func New(file *File) *Store {
	return &Store{
		file:      file,
		titles:    make(map[int]string),
		collapsed: make(map[string]bool),
	}
}

// Load reads both persisted maps. The two reads run concurrently and both
// are awaited before Load returns; a missing file loads as empty maps.
func (s *Store) Load(ctx context.Context) error {
	var (
		titles    map[int]string
		collapsed map[string]bool
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		titles, err = s.file.ReadTitles()
		return err
	})
	g.Go(func() error {
		var err error
		collapsed, err = s.file.ReadCollapsed()
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.titles = titles
	s.collapsed = collapsed
	s.mu.Unlock()
	events.Store.Load(len(titles), len(collapsed))
	return nil
}

// Title returns the stored override for a window. A present empty string is
// a real override (an explicitly cleared title) and reports ok=true.
func (s *Store) Title(windowID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	title, ok := s.titles[windowID]
	return title, ok
}

// DisplayTitle returns the effective title: the stored override verbatim
// when present, else "Window {id}".
func (s *Store) DisplayTitle(windowID int) string {
	if title, ok := s.Title(windowID); ok {
		return title
	}
	return fmt.Sprintf("Window %d", windowID)
}

// SetTitle trims the text, records it verbatim (empty included), and writes
// the full state file. The write happens under the store lock, synchronously,
// so the caller can chain its delayed re-render after it and a Load issued
// later always sees the new title on disk.
func (s *Store) SetTitle(windowID int, text string) error {
	title := strings.TrimSpace(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles[windowID] = title
	titles, collapsed := s.cloneLocked()

	events.Store.SaveTitle(windowID, title)
	return s.file.Write(titles, collapsed)
}

// Collapsed returns the flag for a section key; absent keys are expanded.
func (s *Store) Collapsed(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collapsed[key]
}

// SetCollapsed updates the flag and persists the full map before returning.
// Structural events reload the store from disk at the start of every rebuild,
// so the write must land first or the reload would revert the toggle; holding
// the store lock across mutate-clone-write also keeps successive toggles in
// order on disk. The UI already reflects the change locally, so failures are
// logged only.
func (s *Store) SetCollapsed(key string, collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collapsed[key] = collapsed
	titles, flags := s.cloneLocked()

	events.Store.SaveCollapsed(key, collapsed)
	if err := s.file.Write(titles, flags); err != nil {
		logging.Error(err)
	}
}

// Watch reports external edits of the backing file until stop is closed.
func (s *Store) Watch(stop <-chan struct{}) (<-chan struct{}, error) {
	return s.file.Watch(stop)
}

func (s *Store) cloneLocked() (map[int]string, map[string]bool) {
	titles := make(map[int]string, len(s.titles))
	for id, title := range s.titles {
		titles[id] = title
	}
	collapsed := make(map[string]bool, len(s.collapsed))
	for key, v := range s.collapsed {
		collapsed[key] = v
	}
	return titles, collapsed
}
