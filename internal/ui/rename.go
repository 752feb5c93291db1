package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tab-sidebar/internal/logging/events"
	uistate "github.com/atomicstack/tab-sidebar/internal/ui/state"
)

// renameForm is the inline window-rename prompt. Enter commits, escape
// cancels, and losing focus (a click elsewhere) commits.
type renameForm struct {
	windowID int
	input    textinput.Model
}

func newRenameForm(windowID int, current string) *renameForm {
	input := textinput.New()
	input.Placeholder = "Window title"
	input.CharLimit = 120
	input.Width = 40
	input.SetValue(current)
	input.CursorEnd()
	input.Focus()
	return &renameForm{windowID: windowID, input: input}
}

func (m *Model) startRename(row uistate.Row) tea.Cmd {
	events.Window.RenamePrompt(row.WindowID)
	m.mode = modeRename
	m.rename = newRenameForm(row.WindowID, m.store.DisplayTitle(row.WindowID))
	return textinput.Blink
}

func (m *Model) updateRename(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		events.Window.CancelRename(m.rename.windowID)
		m.closeRename()
		return nil
	case "enter":
		return m.submitRename()
	}
	var cmd tea.Cmd
	m.rename.input, cmd = m.rename.input.Update(key)
	return cmd
}

// submitRename persists the entered title. The store trims and keeps the
// result verbatim, an emptied field included.
func (m *Model) submitRename() tea.Cmd {
	form := m.rename
	m.closeRename()
	if form == nil {
		return nil
	}
	value := form.input.Value()
	st := m.store
	return func() tea.Msg {
		err := st.SetTitle(form.windowID, value)
		return renameSavedMsg{windowID: form.windowID, title: value, err: err}
	}
}

func (m *Model) closeRename() {
	m.mode = modeTree
	m.rename = nil
}

// handleRenameSaved schedules the delayed rebuild once the title write has
// landed, so the new name sorts into place after the host settles.
func (m *Model) handleRenameSaved(msg tea.Msg) tea.Cmd {
	saved := msg.(renameSavedMsg)
	if saved.err != nil {
		m.errText = saved.err.Error()
		return nil
	}
	events.Window.Rename(saved.windowID, saved.title)
	return tea.Tick(renameRenderDelay, func(time.Time) tea.Msg {
		return renderRequestMsg{restoreScroll: true}
	})
}
