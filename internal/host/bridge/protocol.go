package bridge

import "github.com/atomicstack/tab-sidebar/internal/host"

// Wire message types. The extension sends "event" and "response"; the bridge
// sends "query" and "command". Replies are correlated by id.
const (
	msgEvent    = "event"
	msgResponse = "response"
	msgQuery    = "query"
	msgCommand  = "command"
)

const (
	queryWindows     = "windows"
	queryGroups      = "groups"
	queryLastFocused = "last-focused"

	commandFocusWindow = "focus-window"
	commandActivateTab = "activate-tab"
)

type inboundMessage struct {
	Type string `json:"type"`

	// event fields
	Event    string   `json:"event,omitempty"`
	WindowID int      `json:"windowId,omitempty"`
	TabID    int      `json:"tabId,omitempty"`
	GroupID  int      `json:"groupId,omitempty"`
	Changed  []string `json:"changed,omitempty"`

	// response fields
	ID      string       `json:"id,omitempty"`
	OK      bool         `json:"ok,omitempty"`
	Error   string       `json:"error,omitempty"`
	Windows []wireWindow `json:"windows,omitempty"`
	Groups  []wireGroup  `json:"groups,omitempty"`
	Window  *wireWindow  `json:"window,omitempty"`
}

type outboundMessage struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Query    string `json:"query,omitempty"`
	Command  string `json:"command,omitempty"`
	WindowID int    `json:"windowId,omitempty"`
	TabID    int    `json:"tabId,omitempty"`
}

type wireTab struct {
	ID         int    `json:"id"`
	WindowID   int    `json:"windowId"`
	GroupID    int    `json:"groupId,omitempty"`
	Index      int    `json:"index"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	FavIconURL string `json:"favIconUrl,omitempty"`
	Pinned     bool   `json:"pinned,omitempty"`
	Active     bool   `json:"active,omitempty"`
}

type wireWindow struct {
	ID      int       `json:"id"`
	Focused bool      `json:"focused,omitempty"`
	Tabs    []wireTab `json:"tabs"`
}

type wireGroup struct {
	ID       int    `json:"id"`
	WindowID int    `json:"windowId"`
	Title    string `json:"title,omitempty"`
	Color    string `json:"color,omitempty"`
}

func (w wireWindow) toHost() host.Window {
	tabs := make([]host.Tab, len(w.Tabs))
	for i, t := range w.Tabs {
		tabs[i] = host.Tab{
			ID:         t.ID,
			WindowID:   t.WindowID,
			GroupID:    t.GroupID,
			Index:      t.Index,
			Title:      t.Title,
			URL:        t.URL,
			FavIconURL: t.FavIconURL,
			Pinned:     t.Pinned,
			Active:     t.Active,
		}
	}
	return host.Window{ID: w.ID, Focused: w.Focused, Tabs: tabs}
}

func (g wireGroup) toHost() host.TabGroup {
	return host.TabGroup{ID: g.ID, WindowID: g.WindowID, Title: g.Title, Color: g.Color}
}

func (m inboundMessage) toHostEvent() host.Event {
	evt := host.Event{
		Kind:     host.EventKindFromName(m.Event),
		WindowID: m.WindowID,
		TabID:    m.TabID,
		GroupID:  m.GroupID,
	}
	for _, changed := range m.Changed {
		switch changed {
		case "title":
			evt.Change.Title = true
		case "favicon":
			evt.Change.FavIcon = true
		case "active":
			evt.Change.Active = true
		}
	}
	return evt
}
