package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/tab-sidebar/internal/host"
)

var errTest = errors.New("host unavailable")

// fakeClient is an in-memory host.Client that records the commands it
// receives, in order.
type fakeClient struct {
	mu          sync.Mutex
	windows     []host.Window
	groups      []host.TabGroup
	lastFocused *host.Window
	calls       []string

	windowsErr error
	commandErr error

	events chan host.Event
}

func newFakeClient() *fakeClient {
	return &fakeClient{events: make(chan host.Event, 8)}
}

func (f *fakeClient) Windows(context.Context) ([]host.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.windowsErr != nil {
		return nil, f.windowsErr
	}
	out := make([]host.Window, len(f.windows))
	copy(out, f.windows)
	return out, nil
}

func (f *fakeClient) Groups(context.Context) ([]host.TabGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]host.TabGroup, len(f.groups))
	copy(out, f.groups)
	return out, nil
}

func (f *fakeClient) LastFocusedWindow(context.Context) (*host.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastFocused == nil {
		return nil, nil
	}
	window := *f.lastFocused
	return &window, nil
}

func (f *fakeClient) FocusWindow(_ context.Context, windowID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commandErr != nil {
		return f.commandErr
	}
	f.calls = append(f.calls, fmt.Sprintf("focus-window %d", windowID))
	return nil
}

func (f *fakeClient) ActivateTab(_ context.Context, tabID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commandErr != nil {
		return f.commandErr
	}
	f.calls = append(f.calls, fmt.Sprintf("activate-tab %d", tabID))
	return nil
}

func (f *fakeClient) Events() <-chan host.Event {
	return f.events
}

func (f *fakeClient) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeClient) setWindows(windows []host.Window) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows = windows
}

func (f *fakeClient) setLastFocused(window *host.Window) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFocused = window
}
