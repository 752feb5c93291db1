package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tab-sidebar/internal/logging/events"
	uistate "github.com/atomicstack/tab-sidebar/internal/ui/state"
)

const wheelStep = 3

func (m *Model) handleKey(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	if m.mode == modeRename {
		return m.updateRename(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		m.rows.MoveCursor(-1)
		m.rows.EnsureVisible(m.maxVisible())
	case "down", "j":
		m.rows.MoveCursor(1)
		m.rows.EnsureVisible(m.maxVisible())
	case "pgup":
		m.rows.MoveCursor(-m.maxVisible())
		m.rows.EnsureVisible(m.maxVisible())
	case "pgdown":
		m.rows.MoveCursor(m.maxVisible())
		m.rows.EnsureVisible(m.maxVisible())
	case "home":
		m.rows.MoveHome()
		m.rows.EnsureVisible(m.maxVisible())
	case "end":
		m.rows.MoveEnd()
		m.rows.EnsureVisible(m.maxVisible())
	case "enter":
		return m.activateRow(m.rows.Cursor)
	case " ":
		m.toggleCollapse(m.rows.Cursor)
	case "left", "h":
		m.collapseOrAscend()
	case "right", "l":
		m.expandCurrent()
	case "r":
		if row, ok := m.rows.CurrentRow(); ok && row.Kind == uistate.RowWindow {
			return m.startRename(row)
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if m.mode == modeRename {
		// Clicking outside the form commits the edit, like focus loss.
		if mouse.Action == tea.MouseActionPress {
			return m.submitRename()
		}
		return nil
	}

	switch {
	case mouse.Button == tea.MouseButtonWheelUp:
		m.rows.Scroll(-wheelStep, m.maxVisible())
	case mouse.Button == tea.MouseButtonWheelDown:
		m.rows.Scroll(wheelStep, m.maxVisible())
	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		return m.click(mouse.X, mouse.Y)
	}
	return nil
}

// click resolves a screen position to a row. The row list starts at the top
// of the screen, so the clicked index is just the viewport offset plus y.
func (m *Model) click(x, y int) tea.Cmd {
	index := m.rows.ViewportOffset + y
	row, ok := m.rows.RowAt(index)
	if !ok {
		return nil
	}
	m.rows.Cursor = index

	if row.Header() && x >= row.ArrowCol && x < row.ArrowCol+2 {
		m.toggleCollapse(index)
		return nil
	}
	if row.Kind == uistate.RowWindow && x >= row.TitleStart && x < row.TitleEnd {
		return m.startRename(row)
	}
	return m.activateRow(index)
}

// toggleCollapse flips a section flag, persists it, and re-flattens from
// the cached nodes. No host traffic: collapse is purely local state.
func (m *Model) toggleCollapse(index int) {
	row, ok := m.rows.RowAt(index)
	if !ok || !row.Header() {
		return
	}
	next := !m.store.Collapsed(row.SectionKey)
	m.store.SetCollapsed(row.SectionKey, next)
	events.Window.Collapse(row.SectionKey, next)
	m.reflatten()
}

func (m *Model) collapseOrAscend() {
	row, ok := m.rows.CurrentRow()
	if !ok {
		return
	}
	if row.Header() && !row.Collapsed {
		m.toggleCollapse(m.rows.Cursor)
		return
	}
	// On a tab or an already-collapsed header, jump to the parent header.
	for i := m.rows.Cursor - 1; i >= 0; i-- {
		if m.rows.Rows[i].Depth < row.Depth {
			m.rows.Cursor = i
			m.rows.EnsureVisible(m.maxVisible())
			return
		}
	}
}

func (m *Model) expandCurrent() {
	row, ok := m.rows.CurrentRow()
	if !ok {
		return
	}
	if row.Header() && row.Collapsed {
		m.toggleCollapse(m.rows.Cursor)
	}
}

// activateRow maps a row to its host command: window headers focus the
// window, tab rows focus then activate, group headers act on their first
// member tab.
func (m *Model) activateRow(index int) tea.Cmd {
	row, ok := m.rows.RowAt(index)
	if !ok {
		return nil
	}
	switch row.Kind {
	case uistate.RowWindow:
		return m.focusWindow(row.WindowID)
	case uistate.RowGroup, uistate.RowTab:
		if row.TabID == 0 {
			return nil
		}
		return m.activateTab(row.WindowID, row.TabID)
	}
	return nil
}
