package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tab-sidebar/internal/logging"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
)

// fileState is the on-disk shape: two top-level keys, each read and written
// whole. Titles are keyed by the window id rendered as a string.
type fileState struct {
	Titles    map[string]string `yaml:"titles"`
	Collapsed map[string]bool   `yaml:"collapsed"`
}

// File persists the sidebar's user state to a single YAML file. One mutex
// serializes every read and write of the file, so a reload issued after a
// write always observes that write.
type File struct {
	path string

	mu        sync.Mutex
	lastWrite time.Time
}

// NewFile returns a file backend for the given path. The file may not exist
// yet; reads of a missing file yield empty maps.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) read() (fileState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var state fileState
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("read state file: %w", err)
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fileState{}, fmt.Errorf("parse state file: %w", err)
	}
	return state, nil
}

// ReadTitles loads the full title map.
func (f *File) ReadTitles() (map[int]string, error) {
	state, err := f.read()
	if err != nil {
		return nil, err
	}
	titles := make(map[int]string, len(state.Titles))
	for key, title := range state.Titles {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		titles[id] = title
	}
	return titles, nil
}

// ReadCollapsed loads the full collapse map.
func (f *File) ReadCollapsed() (map[string]bool, error) {
	state, err := f.read()
	if err != nil {
		return nil, err
	}
	collapsed := make(map[string]bool, len(state.Collapsed))
	for key, v := range state.Collapsed {
		collapsed[key] = v
	}
	return collapsed, nil
}

// Write replaces the whole file with the given maps. Merging with previous
// contents happens in memory before this call, never at the storage layer.
func (f *File) Write(titles map[int]string, collapsed map[string]bool) error {
	state := fileState{
		Titles:    make(map[string]string, len(titles)),
		Collapsed: make(map[string]bool, len(collapsed)),
	}
	for id, title := range titles {
		state.Titles[strconv.Itoa(id)] = title
	}
	for key, v := range collapsed {
		state.Collapsed[key] = v
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	f.lastWrite = time.Now()
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// selfWriteWindow is how long after one of our own writes fsnotify events on
// the state file are attributed to us rather than an external editor.
const selfWriteWindow = 500 * time.Millisecond

// Watch reports external modifications of the state file on the returned
// channel until stop is closed. Our own writes are filtered out.
func (f *File) Watch(stop <-chan struct{}) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("state watcher: %w", err)
	}
	// Watch the directory: the file itself may not exist yet, and editors
	// often replace rather than modify it.
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch state directory: %w", err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(changes)
		for {
			select {
			case <-stop:
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != filepath.Clean(f.path) {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
					continue
				}
				f.mu.Lock()
				own := time.Since(f.lastWrite) < selfWriteWindow
				f.mu.Unlock()
				if own {
					continue
				}
				events.Store.ExternalChange(f.path)
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Error(err)
			}
		}
	}()
	return changes, nil
}
