package host

import "context"

// Client is the host-facing contract the sidebar renders against. Reads
// return the host's current truth; writes are best-effort and report the
// host's rejection as-is. Events delivers the notification feed consumed by
// the event wiring.
type Client interface {
	// Windows lists all normal-type windows, each populated with its tabs
	// in host order.
	Windows(ctx context.Context) ([]Window, error)

	// Groups lists all tab groups across all windows.
	Groups(ctx context.Context) ([]TabGroup, error)

	// LastFocusedWindow returns the most recently focused normal window
	// including its tabs, or nil when the host has none.
	LastFocusedWindow(ctx context.Context) (*Window, error)

	// FocusWindow gives the window input focus.
	FocusWindow(ctx context.Context, windowID int) error

	// ActivateTab makes the tab active within its window.
	ActivateTab(ctx context.Context, tabID int) error

	// Events returns the host notification feed. The channel closes when
	// the client shuts down.
	Events() <-chan Event
}
