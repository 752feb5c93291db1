package events

import "github.com/atomicstack/tab-sidebar/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Load(titles, collapsed int) {
	logging.Trace("store.load", map[string]interface{}{"titles": titles, "collapsed": collapsed})
}

func (StoreTracer) SaveTitle(windowID int, title string) {
	logging.Trace("store.save.title", map[string]interface{}{"window": windowID, "title": title})
}

func (StoreTracer) SaveCollapsed(key string, collapsed bool) {
	logging.Trace("store.save.collapsed", map[string]interface{}{"key": key, "collapsed": collapsed})
}

// ExternalChange records a state-file modification made outside this process.
func (StoreTracer) ExternalChange(path string) {
	logging.Trace("store.external", map[string]interface{}{"path": path})
}
