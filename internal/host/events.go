package host

// EventKind identifies one host notification.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventWindowCreated
	EventWindowRemoved
	EventWindowFocusChanged
	EventTabCreated
	EventTabRemoved
	EventTabMoved
	EventTabActivated
	EventTabUpdated
	EventGroupCreated
	EventGroupRemoved
	EventGroupMoved
	EventGroupUpdated
)

var eventKindNames = map[EventKind]string{
	EventUnknown:            "unknown",
	EventWindowCreated:      "window-created",
	EventWindowRemoved:      "window-removed",
	EventWindowFocusChanged: "window-focus-changed",
	EventTabCreated:         "tab-created",
	EventTabRemoved:         "tab-removed",
	EventTabMoved:           "tab-moved",
	EventTabActivated:       "tab-activated",
	EventTabUpdated:         "tab-updated",
	EventGroupCreated:       "group-created",
	EventGroupRemoved:       "group-removed",
	EventGroupMoved:         "group-moved",
	EventGroupUpdated:       "group-updated",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EventKindFromName maps a wire event name to its kind. Unrecognised names
// yield EventUnknown, which downstream treats as a no-op.
func EventKindFromName(name string) EventKind {
	for kind, n := range eventKindNames {
		if n == name {
			return kind
		}
	}
	return EventUnknown
}

// TabChange describes which tab attributes an EventTabUpdated touched. A
// single update may concern both activation and content; the flags are
// independent.
type TabChange struct {
	Title   bool
	FavIcon bool
	Active  bool
}

// Event is one host notification. WindowID/TabID/GroupID are filled where the
// kind makes them meaningful; Change only accompanies EventTabUpdated.
type Event struct {
	Kind     EventKind
	WindowID int
	TabID    int
	GroupID  int
	Change   TabChange
}
