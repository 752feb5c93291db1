package host

// GroupNone marks a tab that belongs to no tab group.
const GroupNone = 0

// Tab is one browser tab as reported by the host. Index is the host-assigned
// position within its window; display order follows host order throughout.
type Tab struct {
	ID         int
	WindowID   int
	GroupID    int
	Index      int
	Title      string
	URL        string
	FavIconURL string
	Pinned     bool
	Active     bool
}

// Grouped reports whether the tab claims membership in a tab group. The claim
// is not validated here; a dangling or cross-window group id degrades to an
// ungrouped row at build time.
func (t Tab) Grouped() bool {
	return t.GroupID != GroupNone
}

// Window is a normal-type browser window with its tabs in host order.
type Window struct {
	ID      int
	Focused bool
	Tabs    []Tab
}

// ActiveTab returns the window's active tab, if any.
func (w Window) ActiveTab() (Tab, bool) {
	for _, t := range w.Tabs {
		if t.Active {
			return t, true
		}
	}
	return Tab{}, false
}

// TabGroup is a named, colored group of tabs inside a single window. Color is
// the host's color name (grey, blue, red, yellow, green, pink, purple, cyan,
// orange).
type TabGroup struct {
	ID       int
	WindowID int
	Title    string
	Color    string
}

// Snapshot is one consistent view of the host: all normal windows with their
// tabs, plus all tab groups across windows.
type Snapshot struct {
	Windows []Window
	Groups  []TabGroup
}
