package state

import "strconv"

// RowKind identifies what a flattened tree row represents.
type RowKind int

const (
	RowWindow RowKind = iota
	RowGroup
	RowTab
)

// Row is one visible line of the sidebar tree. Rows are rebuilt from the
// node tree; activation marks are toggled in place between rebuilds.
type Row struct {
	Kind     RowKind
	WindowID int
	GroupID  int
	TabID    int
	Depth    int

	// Header-row fields.
	SectionKey string
	Collapsed  bool
	ArrowCol   int

	// Window-row rename hit region, in rune columns of the rendered line.
	TitleStart int
	TitleEnd   int

	Label      string
	Icon       string
	Site       string
	SiteStart  int
	Accessible string
	Color      string
	Pinned     bool

	ActiveWindow bool
	ActiveTab    bool
}

// Header reports whether the row owns a collapsible content region.
func (r Row) Header() bool {
	return r.Kind == RowWindow || r.Kind == RowGroup
}

// Key identifies the row across rebuilds so cursor position survives.
func (r Row) Key() string {
	switch r.Kind {
	case RowWindow:
		return "w:" + strconv.Itoa(r.WindowID)
	case RowGroup:
		return "g:" + strconv.Itoa(r.GroupID)
	default:
		return "t:" + strconv.Itoa(r.TabID)
	}
}
