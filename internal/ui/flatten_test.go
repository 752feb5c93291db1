package ui

import (
	"strconv"
	"strings"
	"testing"

	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/tree"
	uistate "github.com/atomicstack/tab-sidebar/internal/ui/state"
)

type staticState struct {
	titles    map[int]string
	collapsed map[string]bool
}

func (s staticState) DisplayTitle(windowID int) string {
	if title, ok := s.titles[windowID]; ok {
		return title
	}
	return "Window " + strconv.Itoa(windowID)
}

func (s staticState) Collapsed(key string) bool {
	return s.collapsed[key]
}

func sampleNodes(collapsed map[string]bool) []tree.WindowNode {
	snapshot := host.Snapshot{
		Windows: []host.Window{
			{
				ID:      1,
				Focused: true,
				Tabs: []host.Tab{
					{ID: 10, WindowID: 1, Title: "Inbox", URL: "https://mail.example.com", Pinned: true},
					{ID: 11, WindowID: 1, GroupID: 5, Title: "Spec", URL: "https://docs.example.com"},
				},
			},
		},
		Groups: []host.TabGroup{{ID: 5, WindowID: 1, Title: "Work", Color: "blue"}},
	}
	state := staticState{collapsed: collapsed}
	return tree.Build(snapshot, state)
}

func TestFlattenProducesRowsInOrder(t *testing.T) {
	flags := map[string]bool{}
	nodes := sampleNodes(flags)
	rows := flattenNodes(nodes, func(key string) bool { return flags[key] }, 40)

	kinds := []uistate.RowKind{uistate.RowWindow, uistate.RowTab, uistate.RowGroup, uistate.RowTab}
	if len(rows) != len(kinds) {
		t.Fatalf("got %d rows, want %d", len(rows), len(kinds))
	}
	for i, kind := range kinds {
		if rows[i].Kind != kind {
			t.Fatalf("row %d kind = %v, want %v", i, rows[i].Kind, kind)
		}
	}
	if rows[2].Label != "Work" || rows[2].Color != "blue" {
		t.Fatalf("group row wrong: %+v", rows[2])
	}
	if rows[1].Depth != 1 || rows[3].Depth != 2 {
		t.Fatalf("depths wrong: %d / %d", rows[1].Depth, rows[3].Depth)
	}
}

func TestFlattenSkipsCollapsedRegions(t *testing.T) {
	flags := map[string]bool{"group-content-5": true}
	nodes := sampleNodes(flags)
	rows := flattenNodes(nodes, func(key string) bool { return flags[key] }, 40)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (group content hidden)", len(rows))
	}
	if !rows[2].Collapsed {
		t.Fatalf("group header should carry the collapsed flag")
	}

	flags["window-content-1"] = true
	rows = flattenNodes(nodes, func(key string) bool { return flags[key] }, 40)
	if len(rows) != 1 || rows[0].Kind != uistate.RowWindow {
		t.Fatalf("collapsed window should leave only its header: %d rows", len(rows))
	}
}

func TestFlattenCollapseCallbackBeatsNodeFlag(t *testing.T) {
	// Nodes were built expanded; a later toggle must take effect through
	// the callback without rebuilding them.
	nodes := sampleNodes(map[string]bool{})
	rows := flattenNodes(nodes, func(key string) bool {
		return key == "window-content-1"
	}, 40)
	if len(rows) != 1 {
		t.Fatalf("callback collapse ignored: %d rows", len(rows))
	}
	if !rows[0].Collapsed {
		t.Fatalf("header must reflect the live collapse flag")
	}
}

func TestFlattenWindowTitleSpan(t *testing.T) {
	nodes := sampleNodes(map[string]bool{})
	rows := flattenNodes(nodes, func(string) bool { return false }, 40)

	header := rows[0]
	if header.ArrowCol != 2 {
		t.Fatalf("arrow col = %d", header.ArrowCol)
	}
	if header.TitleStart != 4 {
		t.Fatalf("title start = %d", header.TitleStart)
	}
	want := 4 + len([]rune(header.Label))
	if header.TitleEnd != want {
		t.Fatalf("title end = %d, want %d", header.TitleEnd, want)
	}
}

func TestFlattenEmptyTitleStillClickable(t *testing.T) {
	snapshot := host.Snapshot{Windows: []host.Window{{ID: 1}}}
	nodes := tree.Build(snapshot, staticState{titles: map[int]string{1: ""}})
	rows := flattenNodes(nodes, func(string) bool { return false }, 40)

	if rows[0].Label != "" {
		t.Fatalf("cleared title should render empty, got %q", rows[0].Label)
	}
	if rows[0].TitleEnd <= rows[0].TitleStart {
		t.Fatalf("empty title must keep a non-empty hit region")
	}
}

func TestFlattenNarrowOmitsSiteColumn(t *testing.T) {
	nodes := sampleNodes(map[string]bool{})
	rows := flattenNodes(nodes, func(string) bool { return false }, 40)

	for _, row := range rows {
		if row.Kind == uistate.RowTab && strings.Contains(row.Label, "example.com") {
			t.Fatalf("narrow layout leaked the site column: %q", row.Label)
		}
	}
}

func TestFlattenWideAlignsSiteColumn(t *testing.T) {
	nodes := sampleNodes(map[string]bool{})
	rows := flattenNodes(nodes, func(string) bool { return false }, 100)

	var sites []int
	for _, row := range rows {
		if row.Kind != uistate.RowTab {
			continue
		}
		if row.SiteStart == 0 {
			t.Fatalf("wide layout missing site column: %+v", row)
		}
		if !strings.HasSuffix(row.Label, row.Site) {
			t.Fatalf("label %q does not end with site %q", row.Label, row.Site)
		}
		sites = append(sites, row.SiteStart)
	}
	if len(sites) != 2 {
		t.Fatalf("expected 2 tab rows, got %d", len(sites))
	}
	if sites[0] != sites[1] {
		t.Fatalf("site columns not aligned: %v", sites)
	}
}

func TestFlattenTabMetadata(t *testing.T) {
	nodes := sampleNodes(map[string]bool{})
	rows := flattenNodes(nodes, func(string) bool { return false }, 40)

	pinnedRow := rows[1]
	if !pinnedRow.Pinned {
		t.Fatalf("pinned flag lost")
	}
	if pinnedRow.Accessible != "Inbox (pinned)" {
		t.Fatalf("accessible label = %q", pinnedRow.Accessible)
	}
	if strings.Contains(pinnedRow.Label, "(pinned)") {
		t.Fatalf("pinned suffix leaked into the visual label: %q", pinnedRow.Label)
	}
	if pinnedRow.Icon != tree.DefaultIconGlyph {
		t.Fatalf("tab without favicon should use the default glyph: %q", pinnedRow.Icon)
	}
}
