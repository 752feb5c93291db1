package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tab-sidebar/internal/theme"
	uistate "github.com/atomicstack/tab-sidebar/internal/ui/state"
)

// bottomBarRows is the status line plus the footer/hint line.
const bottomBarRows = 2

const (
	arrowExpanded  = "▾"
	arrowCollapsed = "▸"
	indicatorGlyph = "▌"
)

func (m *Model) View() string {
	if m.mode == modeRename && m.rename != nil {
		return m.viewRename()
	}

	var b strings.Builder
	rows := m.rows.Rows
	maxVisible := m.maxVisible()

	if len(rows) == 0 {
		if m.loading {
			b.WriteString(m.styles.Info.Render("Waiting for the browser extension..."))
		} else {
			b.WriteString(m.styles.Info.Render("(no windows)"))
		}
		b.WriteByte('\n')
	} else {
		start := m.rows.ViewportOffset
		end := start + maxVisible
		if end > len(rows) {
			end = len(rows)
		}
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(rows[i], i == m.rows.Cursor))
			b.WriteByte('\n')
		}
	}

	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.footerLine())
	return b.String()
}

// renderRow draws one line. The cursor row drops its per-part colors and
// takes the selection style whole, so the highlight reads as one bar.
func (m *Model) renderRow(row uistate.Row, selected bool) string {
	st := m.styles

	var indicator string
	switch {
	case selected:
		indicator = st.SelectedIndicator.Render(indicatorGlyph)
	case row.ActiveWindow || row.ActiveTab:
		indicator = st.ActiveIndicator.Render(indicatorGlyph)
	default:
		indicator = st.RowIndicator.Render(indicatorGlyph)
	}

	indent := strings.Repeat(" ", row.Depth*indentStep)
	var content string
	if selected {
		content = st.SelectedRow.Render(m.plainContent(row))
	} else {
		content = m.styledContent(row)
	}

	line := indicator + " " + indent + content
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return line
}

func (m *Model) plainContent(row uistate.Row) string {
	switch row.Kind {
	case uistate.RowWindow:
		return arrowFor(row.Collapsed) + " " + row.Label
	case uistate.RowGroup:
		return arrowFor(row.Collapsed) + " " + theme.SwatchGlyph + " " + row.Label
	default:
		return row.Icon + " " + pinnedCell(row.Pinned) + " " + row.Label
	}
}

func (m *Model) styledContent(row uistate.Row) string {
	st := m.styles
	switch row.Kind {
	case uistate.RowWindow:
		titleStyle := st.WindowHeader
		if row.ActiveWindow {
			titleStyle = st.ActiveWindowHeader
		}
		return st.Arrow.Render(arrowFor(row.Collapsed)) + " " + titleStyle.Render(row.Label)
	case uistate.RowGroup:
		return st.Arrow.Render(arrowFor(row.Collapsed)) + " " +
			theme.Swatch(row.Color) + " " +
			st.GroupHeader.Render(row.Label)
	default:
		labelStyle := st.Tab
		if row.ActiveTab {
			labelStyle = st.ActiveTab
		}
		label := labelStyle.Render(row.Label)
		if row.Site != "" && row.SiteStart > 0 {
			runes := []rune(row.Label)
			if row.SiteStart <= len(runes) {
				label = labelStyle.Render(string(runes[:row.SiteStart])) +
					st.Site.Render(string(runes[row.SiteStart:]))
			}
		}
		return st.Icon.Render(row.Icon) + " " + pinnedMarker(st, row.Pinned) + " " + label
	}
}

func pinnedMarker(st *theme.Styles, pinned bool) string {
	if pinned {
		return st.Pinned.Render("*")
	}
	return " "
}

func pinnedCell(pinned bool) string {
	if pinned {
		return "*"
	}
	return " "
}

func arrowFor(collapsed bool) string {
	if collapsed {
		return arrowCollapsed
	}
	return arrowExpanded
}

func (m *Model) statusLine() string {
	st := m.styles
	switch {
	case m.errText != "":
		return st.Error.Render("Error: " + m.errText)
	case m.infoText != "":
		return st.Info.Render(m.infoText)
	case m.loading:
		return st.Info.Render("Loading...")
	}
	return ""
}

func (m *Model) footerLine() string {
	if !m.showFooter {
		return ""
	}
	return m.styles.Footer.Render("↑/↓ move · enter open · space fold · r rename · q quit")
}

func (m *Model) viewRename() string {
	st := m.styles
	var b strings.Builder
	b.WriteString(st.FormTitle.Render(fmt.Sprintf("Rename window %d", m.rename.windowID)))
	b.WriteString("\n\n")
	b.WriteString(m.rename.input.View())
	b.WriteString("\n\n")
	b.WriteString(st.FormHelp.Render("enter save · esc cancel"))
	return b.String()
}
