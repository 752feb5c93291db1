package state

// Tree holds the flattened row list plus cursor and scroll position. The
// cursor tracks a row key across rebuilds so it survives windows being
// reordered or collapsed.
type Tree struct {
	Rows           []Row
	Cursor         int
	ViewportOffset int
}

func NewTree() *Tree {
	return &Tree{}
}

// SetRows replaces the row list, keeping the cursor on the row it pointed
// at before the rebuild when that row still exists.
func (t *Tree) SetRows(rows []Row) {
	var key string
	if t.Cursor >= 0 && t.Cursor < len(t.Rows) {
		key = t.Rows[t.Cursor].Key()
	}
	t.Rows = rows
	if key != "" {
		for i := range rows {
			if rows[i].Key() == key {
				t.Cursor = i
				return
			}
		}
	}
	t.clampCursor()
}

func (t *Tree) clampCursor() {
	if len(t.Rows) == 0 {
		t.Cursor = 0
		return
	}
	if t.Cursor < 0 {
		t.Cursor = 0
	}
	if t.Cursor >= len(t.Rows) {
		t.Cursor = len(t.Rows) - 1
	}
}

// RowAt returns the row at the given index when it exists.
func (t *Tree) RowAt(index int) (Row, bool) {
	if index < 0 || index >= len(t.Rows) {
		return Row{}, false
	}
	return t.Rows[index], true
}

// CurrentRow returns the row under the cursor.
func (t *Tree) CurrentRow() (Row, bool) {
	return t.RowAt(t.Cursor)
}

// MoveCursor shifts the cursor by delta, clamped to the row list.
func (t *Tree) MoveCursor(delta int) bool {
	if len(t.Rows) == 0 {
		return false
	}
	next := t.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(t.Rows) {
		next = len(t.Rows) - 1
	}
	if next == t.Cursor {
		return false
	}
	t.Cursor = next
	return true
}

// MoveHome places the cursor on the first row.
func (t *Tree) MoveHome() {
	t.Cursor = 0
}

// MoveEnd places the cursor on the last row.
func (t *Tree) MoveEnd() {
	if len(t.Rows) == 0 {
		t.Cursor = 0
		return
	}
	t.Cursor = len(t.Rows) - 1
}

// EnsureVisible scrolls the viewport the minimum amount needed to show
// the cursor, given the number of rows the viewport can display.
func (t *Tree) EnsureVisible(maxVisible int) {
	if maxVisible <= 0 {
		return
	}
	if t.Cursor < t.ViewportOffset {
		t.ViewportOffset = t.Cursor
	}
	if t.Cursor >= t.ViewportOffset+maxVisible {
		t.ViewportOffset = t.Cursor - maxVisible + 1
	}
	t.ClampViewport(maxVisible)
}

// Scroll shifts the viewport by delta rows without moving the cursor.
func (t *Tree) Scroll(delta, maxVisible int) {
	t.ViewportOffset += delta
	t.ClampViewport(maxVisible)
}

// ClampViewport keeps the viewport offset inside the scrollable range.
func (t *Tree) ClampViewport(maxVisible int) {
	max := len(t.Rows) - maxVisible
	if max < 0 {
		max = 0
	}
	if t.ViewportOffset > max {
		t.ViewportOffset = max
	}
	if t.ViewportOffset < 0 {
		t.ViewportOffset = 0
	}
}

// ClearActiveMarks strips the focused-window and active-tab marks from
// every row, so a refresh can re-mark from a clean slate.
func (t *Tree) ClearActiveMarks() {
	for i := range t.Rows {
		t.Rows[i].ActiveWindow = false
		t.Rows[i].ActiveTab = false
	}
}

// MarkActive flags the header of the focused window and its active tab.
// Rows hidden by collapse simply do not exist, so marking them is a no-op.
func (t *Tree) MarkActive(windowID, tabID int) {
	for i := range t.Rows {
		row := &t.Rows[i]
		if row.Kind == RowWindow && row.WindowID == windowID {
			row.ActiveWindow = true
		}
		if row.Kind == RowTab && tabID != 0 && row.TabID == tabID {
			row.ActiveTab = true
		}
	}
}
