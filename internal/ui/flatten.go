package ui

import (
	"github.com/atomicstack/tab-sidebar/internal/format/table"
	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/tree"
	uistate "github.com/atomicstack/tab-sidebar/internal/ui/state"
)

// Column layout of a rendered line:
//
//	col 0    indicator
//	col 2    window arrow + title
//	col 4    group arrow (or ungrouped tab icon)
//	col 6    grouped tab icon
const (
	indicatorWidth = 2
	indentStep     = 2
)

// flattenNodes turns the node tree into the visible row list. Collapse
// flags are read through the callback so a just-toggled flag takes effect
// without rebuilding the nodes. Width at or beyond the wide threshold adds
// the aligned site column to tab rows.
func flattenNodes(nodes []tree.WindowNode, collapsed func(string) bool, width int) []uistate.Row {
	var rows []uistate.Row
	var tabRows []int // indices into rows, for site-column alignment

	for _, node := range nodes {
		windowCollapsed := collapsed(node.SectionKey)
		titleLen := len([]rune(node.Title))
		if titleLen == 0 {
			// Keep a clickable rename target even for a cleared title.
			titleLen = 1
		}
		rows = append(rows, uistate.Row{
			Kind:       uistate.RowWindow,
			WindowID:   node.Window.ID,
			Depth:      0,
			SectionKey: node.SectionKey,
			Collapsed:  windowCollapsed,
			ArrowCol:   indicatorWidth,
			TitleStart: indicatorWidth + 2,
			TitleEnd:   indicatorWidth + 2 + titleLen,
			Label:      node.Title,
		})
		if windowCollapsed {
			continue
		}

		for _, block := range node.Blocks {
			if block.Single() {
				rows = append(rows, tabRow(block.Tabs[0], 1))
				tabRows = append(tabRows, len(rows)-1)
				continue
			}

			group := *block.Group
			key := tree.GroupKey(group)
			groupCollapsed := collapsed(key)
			rows = append(rows, uistate.Row{
				Kind:       uistate.RowGroup,
				WindowID:   node.Window.ID,
				GroupID:    group.ID,
				TabID:      block.Tabs[0].ID,
				Depth:      1,
				SectionKey: key,
				Collapsed:  groupCollapsed,
				ArrowCol:   indicatorWidth + indentStep,
				Label:      groupLabel(group),
				Color:      group.Color,
			})
			if groupCollapsed {
				continue
			}
			for _, tab := range block.Tabs {
				rows = append(rows, tabRow(tab, 2))
				tabRows = append(tabRows, len(rows)-1)
			}
		}
	}

	if width >= wideWidth {
		alignSites(rows, tabRows)
	}
	return rows
}

func tabRow(tab host.Tab, depth int) uistate.Row {
	return uistate.Row{
		Kind:       uistate.RowTab,
		WindowID:   tab.WindowID,
		GroupID:    tab.GroupID,
		TabID:      tab.ID,
		Depth:      depth,
		Label:      tree.TabTitle(tab),
		Icon:       tree.TabIcon(tab),
		Site:       tree.SiteLabel(tab),
		Accessible: tree.AccessibleTitle(tab),
		Pinned:     tab.Pinned,
	}
}

func groupLabel(group host.TabGroup) string {
	if group.Title == "" {
		return "(untitled)"
	}
	return group.Title
}

// alignSites pads tab labels so the site column lines up across every tab
// row currently visible, and records where the site part starts.
func alignSites(rows []uistate.Row, tabRows []int) {
	if len(tabRows) == 0 {
		return
	}
	cells := make([][]string, len(tabRows))
	for i, idx := range tabRows {
		cells[i] = []string{rows[idx].Label, rows[idx].Site}
	}
	aligned := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignLeft})
	for i, idx := range tabRows {
		row := &rows[idx]
		if row.Site == "" {
			continue
		}
		row.Label = aligned[i]
		row.SiteStart = len([]rune(aligned[i])) - len([]rune(row.Site))
	}
}
