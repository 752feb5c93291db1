package events

import "github.com/atomicstack/tab-sidebar/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Focus(windowID int) {
	logging.Trace("window.focus", map[string]interface{}{"window": windowID})
}

func (WindowTracer) RenamePrompt(windowID int) {
	logging.Trace("window.rename.prompt", map[string]interface{}{"window": windowID})
}

func (WindowTracer) Rename(windowID int, title string) {
	logging.Trace("window.rename", map[string]interface{}{"window": windowID, "title": title})
}

func (WindowTracer) CancelRename(windowID int) {
	logging.Trace("window.rename.cancel", map[string]interface{}{"window": windowID})
}

func (WindowTracer) Collapse(key string, collapsed bool) {
	logging.Trace("window.collapse", map[string]interface{}{"key": key, "collapsed": collapsed})
}
