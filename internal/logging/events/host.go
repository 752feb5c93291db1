package events

import "github.com/atomicstack/tab-sidebar/internal/logging"

type HostTracer struct{}

var Host = HostTracer{}

func (HostTracer) Connected(remote string) {
	logging.Trace("host.connected", map[string]interface{}{"remote": remote})
}

func (HostTracer) Disconnected(remote string) {
	logging.Trace("host.disconnected", map[string]interface{}{"remote": remote})
}

func (HostTracer) Event(kind string, windowID, tabID int) {
	logging.Trace("host.event", map[string]interface{}{"kind": kind, "window": windowID, "tab": tabID})
}

func (HostTracer) Dropped(kind string) {
	logging.Trace("host.event.dropped", map[string]interface{}{"kind": kind})
}
