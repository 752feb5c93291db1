package ui

import (
	"github.com/atomicstack/tab-sidebar/internal/backend"
	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/tree"
)

// startupMsg fires once the startup delay has elapsed and triggers the
// first render.
type startupMsg struct{}

// renderRequestMsg asks for a full rebuild. restoreScroll keeps the
// viewport where it was instead of snapping to the top.
type renderRequestMsg struct {
	restoreScroll bool
}

// treeBuiltMsg carries the result of one background rebuild. generation
// identifies the render that started it; stale generations are discarded.
type treeBuiltMsg struct {
	generation    int
	restoreScroll bool
	scroll        int
	nodes         []tree.WindowNode
	snapshot      host.Snapshot
	err           error
}

// activationMsg carries the host's answer to the last-focused-window query.
// has is false when no window currently holds focus.
type activationMsg struct {
	has      bool
	windowID int
	tabID    int
	err      error
}

// actionResultMsg reports the outcome of a host command (focus, activate).
type actionResultMsg struct {
	info string
	err  error
}

// renameSavedMsg reports the synchronous title write finishing.
type renameSavedMsg struct {
	windowID int
	title    string
	err      error
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

type storeChangedMsg struct{}

type storeWatchDoneMsg struct{}
