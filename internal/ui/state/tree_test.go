package state

import "testing"

func sampleRows() []Row {
	return []Row{
		{Kind: RowWindow, WindowID: 1, SectionKey: "window-content-1"},
		{Kind: RowTab, WindowID: 1, TabID: 10},
		{Kind: RowGroup, WindowID: 1, GroupID: 5, SectionKey: "group-content-5"},
		{Kind: RowTab, WindowID: 1, TabID: 11, GroupID: 5},
		{Kind: RowWindow, WindowID: 2, SectionKey: "window-content-2"},
	}
}

func TestSetRowsPreservesCursorByKey(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())
	tree.Cursor = 3 // tab 11

	// Rebuild with the windows swapped; tab 11 moves to index 1.
	tree.SetRows([]Row{
		{Kind: RowWindow, WindowID: 1},
		{Kind: RowTab, WindowID: 1, TabID: 11, GroupID: 5},
		{Kind: RowWindow, WindowID: 2},
	})
	if tree.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", tree.Cursor)
	}
}

func TestSetRowsClampsWhenRowGone(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())
	tree.Cursor = 4

	tree.SetRows(sampleRows()[:2])
	if tree.Cursor != 1 {
		t.Fatalf("cursor = %d, want clamp to last row", tree.Cursor)
	}

	tree.SetRows(nil)
	if tree.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0 on empty", tree.Cursor)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())

	if tree.MoveCursor(-1) {
		t.Fatalf("moving above the first row should report no movement")
	}
	if !tree.MoveCursor(10) {
		t.Fatalf("large delta should clamp to the last row and report movement")
	}
	if tree.Cursor != len(tree.Rows)-1 {
		t.Fatalf("cursor = %d", tree.Cursor)
	}
}

func TestEnsureVisibleScrollsMinimally(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())

	tree.Cursor = 4
	tree.EnsureVisible(2)
	if tree.ViewportOffset != 3 {
		t.Fatalf("offset = %d, want 3", tree.ViewportOffset)
	}

	tree.Cursor = 0
	tree.EnsureVisible(2)
	if tree.ViewportOffset != 0 {
		t.Fatalf("offset = %d, want 0", tree.ViewportOffset)
	}
}

func TestScrollClamps(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())

	tree.Scroll(100, 2)
	if tree.ViewportOffset != 3 {
		t.Fatalf("offset = %d, want 3", tree.ViewportOffset)
	}
	tree.Scroll(-100, 2)
	if tree.ViewportOffset != 0 {
		t.Fatalf("offset = %d, want 0", tree.ViewportOffset)
	}
}

func TestMarkActiveAndClear(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())

	tree.MarkActive(1, 11)
	if !tree.Rows[0].ActiveWindow {
		t.Fatalf("window header not marked")
	}
	if !tree.Rows[3].ActiveTab {
		t.Fatalf("active tab not marked")
	}
	if tree.Rows[1].ActiveTab {
		t.Fatalf("inactive tab marked")
	}

	// Re-marking the same state is idempotent.
	tree.ClearActiveMarks()
	tree.MarkActive(1, 11)
	if !tree.Rows[0].ActiveWindow || !tree.Rows[3].ActiveTab {
		t.Fatalf("marks lost after refresh")
	}

	tree.ClearActiveMarks()
	for i, row := range tree.Rows {
		if row.ActiveWindow || row.ActiveTab {
			t.Fatalf("row %d still marked", i)
		}
	}
}

func TestMarkActiveWithoutTab(t *testing.T) {
	tree := NewTree()
	tree.SetRows(sampleRows())

	tree.MarkActive(2, 0)
	if !tree.Rows[4].ActiveWindow {
		t.Fatalf("window 2 not marked")
	}
	for i, row := range tree.Rows {
		if row.ActiveTab {
			t.Fatalf("row %d marked active tab with no tab id", i)
		}
	}
}

func TestRowKeyAndHeader(t *testing.T) {
	if (Row{Kind: RowWindow, WindowID: 3}).Key() != "w:3" {
		t.Fatalf("window key wrong")
	}
	if (Row{Kind: RowGroup, GroupID: 5}).Key() != "g:5" {
		t.Fatalf("group key wrong")
	}
	if (Row{Kind: RowTab, TabID: 9}).Key() != "t:9" {
		t.Fatalf("tab key wrong")
	}
	if !(Row{Kind: RowGroup}).Header() || (Row{Kind: RowTab}).Header() {
		t.Fatalf("header classification wrong")
	}
}
