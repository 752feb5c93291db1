package state

import "github.com/atomicstack/tab-sidebar/internal/host"

// SnapshotStore keeps the last applied host snapshot plus the current focus
// marks. Mutated only through its methods; reads return copies.
type SnapshotStore interface {
	Snapshot() host.Snapshot
	SetSnapshot(host.Snapshot)
	Focus() (windowID, tabID int)
	SetFocus(windowID, tabID int)
	ClearFocus()
}

type snapshotStore struct {
	snapshot host.Snapshot
	windowID int
	tabID    int
}

// NewSnapshotStore returns an empty snapshot store.
func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{}
}

func (s *snapshotStore) Snapshot() host.Snapshot {
	return cloneSnapshot(s.snapshot)
}

func (s *snapshotStore) SetSnapshot(snapshot host.Snapshot) {
	s.snapshot = cloneSnapshot(snapshot)
}

func (s *snapshotStore) Focus() (int, int) {
	return s.windowID, s.tabID
}

func (s *snapshotStore) SetFocus(windowID, tabID int) {
	s.windowID = windowID
	s.tabID = tabID
}

func (s *snapshotStore) ClearFocus() {
	s.windowID = 0
	s.tabID = 0
}

func cloneSnapshot(snapshot host.Snapshot) host.Snapshot {
	dup := host.Snapshot{}
	if len(snapshot.Windows) > 0 {
		dup.Windows = make([]host.Window, len(snapshot.Windows))
		for i, w := range snapshot.Windows {
			win := w
			if len(w.Tabs) > 0 {
				win.Tabs = make([]host.Tab, len(w.Tabs))
				copy(win.Tabs, w.Tabs)
			}
			dup.Windows[i] = win
		}
	}
	if len(snapshot.Groups) > 0 {
		dup.Groups = make([]host.TabGroup, len(snapshot.Groups))
		copy(dup.Groups, snapshot.Groups)
	}
	return dup
}
