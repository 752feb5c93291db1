// Package dispatcher is the event decision table: it maps each host
// notification to the operations the UI must run — a full tree rebuild, an
// activation-marker refresh, or both. Keeping the table in one place keeps
// the rebuild-vs-patch policy out of the input handlers.
package dispatcher

import "github.com/atomicstack/tab-sidebar/internal/host"

// Result names the operations one event requires. Both flags may be set:
// a tab update can concern activation and content at the same time.
type Result struct {
	Rebuild           bool
	RefreshActivation bool
}

type Dispatcher struct{}

func New() *Dispatcher {
	return &Dispatcher{}
}

// Handle classifies one host event.
func (d *Dispatcher) Handle(evt host.Event) Result {
	switch evt.Kind {
	case host.EventWindowCreated,
		host.EventWindowRemoved,
		host.EventTabCreated,
		host.EventTabRemoved,
		host.EventTabMoved,
		host.EventGroupCreated,
		host.EventGroupRemoved,
		host.EventGroupMoved,
		host.EventGroupUpdated:
		return Result{Rebuild: true}
	case host.EventWindowFocusChanged, host.EventTabActivated:
		return Result{RefreshActivation: true}
	case host.EventTabUpdated:
		var res Result
		if evt.Change.Active {
			res.RefreshActivation = true
		}
		if evt.Change.Title || evt.Change.FavIcon {
			res.Rebuild = true
		}
		return res
	}
	return Result{}
}
