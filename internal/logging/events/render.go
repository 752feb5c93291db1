package events

import "github.com/atomicstack/tab-sidebar/internal/logging"

type RenderTracer struct{}

var Render = RenderTracer{}

func (RenderTracer) Full(generation int, restoreScroll bool) {
	logging.Trace("render.full", map[string]interface{}{"generation": generation, "restoreScroll": restoreScroll})
}

func (RenderTracer) Applied(generation, rows int) {
	logging.Trace("render.applied", map[string]interface{}{"generation": generation, "rows": rows})
}

// Discarded records a rebuild thrown away because a newer render started
// while it was in flight.
func (RenderTracer) Discarded(generation, current int) {
	logging.Trace("render.discarded", map[string]interface{}{"generation": generation, "current": current})
}

func (RenderTracer) Activation(windowID, tabID int) {
	logging.Trace("render.activation", map[string]interface{}{"window": windowID, "tab": tabID})
}

func (RenderTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("render.error", map[string]interface{}{"error": err.Error()})
}
