package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
	"github.com/atomicstack/tab-sidebar/internal/tree"
)

// scheduleRender starts one full rebuild: reload the persisted state, fetch
// windows and groups concurrently, and assemble the node tree off the update
// loop. The generation counter is bumped first so any rebuild still in
// flight lands stale and gets discarded.
func (m *Model) scheduleRender(restoreScroll bool) tea.Cmd {
	m.generation++
	m.loading = true
	generation := m.generation
	scroll := m.rows.ViewportOffset
	events.Render.Full(generation, restoreScroll)

	client := m.client
	st := m.store
	return func() tea.Msg {
		ctx := context.Background()
		if err := st.Load(ctx); err != nil {
			return treeBuiltMsg{generation: generation, err: err}
		}

		var (
			windows []host.Window
			groups  []host.TabGroup
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			windows, err = client.Windows(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			groups, err = client.Groups(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return treeBuiltMsg{generation: generation, err: err}
		}

		snapshot := host.Snapshot{Windows: windows, Groups: groups}
		return treeBuiltMsg{
			generation:    generation,
			restoreScroll: restoreScroll,
			scroll:        scroll,
			nodes:         tree.Build(snapshot, st),
			snapshot:      snapshot,
		}
	}
}

// refreshActivation asks the host which window holds focus and re-marks the
// rows. It never rebuilds the tree; applying the same answer twice is a
// no-op.
func (m *Model) refreshActivation() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		window, err := client.LastFocusedWindow(context.Background())
		if err != nil {
			return activationMsg{err: err}
		}
		if window == nil {
			return activationMsg{}
		}
		msg := activationMsg{has: true, windowID: window.ID}
		if tab, ok := window.ActiveTab(); ok {
			msg.tabID = tab.ID
		}
		return msg
	}
}

func (m *Model) focusWindow(windowID int) tea.Cmd {
	events.Window.Focus(windowID)
	client := m.client
	return func() tea.Msg {
		if err := client.FocusWindow(context.Background(), windowID); err != nil {
			return actionResultMsg{err: fmt.Errorf("focus window %d: %w", windowID, err)}
		}
		return actionResultMsg{info: fmt.Sprintf("Focused window %d", windowID)}
	}
}

// activateTab focuses the tab's window first and only then activates the
// tab, sequenced inside one command so the second call cannot overtake the
// first.
func (m *Model) activateTab(windowID, tabID int) tea.Cmd {
	events.Tab.Activate(windowID, tabID)
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.FocusWindow(ctx, windowID); err != nil {
			return actionResultMsg{err: fmt.Errorf("focus window %d: %w", windowID, err)}
		}
		if err := client.ActivateTab(ctx, tabID); err != nil {
			events.Tab.ActivateError(tabID, err)
			return actionResultMsg{err: fmt.Errorf("activate tab %d: %w", tabID, err)}
		}
		return actionResultMsg{info: fmt.Sprintf("Activated tab %d", tabID)}
	}
}

func (m *Model) waitForBackendEvent() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Events()
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

func (m *Model) waitForStoreChange() tea.Cmd {
	if m.storeChanges == nil {
		return nil
	}
	ch := m.storeChanges
	return func() tea.Msg {
		_, ok := <-ch
		if !ok {
			return storeWatchDoneMsg{}
		}
		return storeChangedMsg{}
	}
}
