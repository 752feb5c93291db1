package events

import "github.com/atomicstack/tab-sidebar/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Activate(windowID, tabID int) {
	logging.Trace("tab.activate", map[string]interface{}{"window": windowID, "tab": tabID})
}

func (TabTracer) ActivateError(tabID int, err error) {
	if err == nil {
		return
	}
	logging.Trace("tab.activate.error", map[string]interface{}{"tab": tabID, "error": err.Error()})
}
