// Package ui is the Bubble Tea program: it owns the flattened tree, the
// render generation counter, and the input handlers that translate keys and
// mouse clicks into host commands and store writes.
package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tab-sidebar/internal/backend"
	"github.com/atomicstack/tab-sidebar/internal/data/dispatcher"
	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
	"github.com/atomicstack/tab-sidebar/internal/state"
	"github.com/atomicstack/tab-sidebar/internal/store"
	"github.com/atomicstack/tab-sidebar/internal/theme"
	"github.com/atomicstack/tab-sidebar/internal/tree"
	uistate "github.com/atomicstack/tab-sidebar/internal/ui/state"
)

type mode int

const (
	modeTree mode = iota
	modeRename
)

// renameRenderDelay gives the host a beat to finish its own focus shuffle
// before the post-rename rebuild snapshots it.
const renameRenderDelay = 100 * time.Millisecond

// wideWidth is the threshold above which tab rows gain the site column.
const wideWidth = 80

// Options wires the model's collaborators.
type Options struct {
	Client       host.Client
	Store        *store.Store
	Watcher      *backend.Watcher
	StoreChanges <-chan struct{}

	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	StartupDelay time.Duration
}

type msgHandler func(tea.Msg) tea.Cmd

// Model is the top-level Bubble Tea model.
type Model struct {
	client       host.Client
	store        *store.Store
	watcher      *backend.Watcher
	storeChanges <-chan struct{}
	dispatcher   *dispatcher.Dispatcher
	snapshots    state.SnapshotStore
	styles       *theme.Styles

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	startupDelay time.Duration
	started      bool

	rows       *uistate.Tree
	nodes      []tree.WindowNode
	generation int
	loading    bool

	mode   mode
	rename *renameForm

	errText  string
	infoText string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model. Rendering does not start until the startup
// delay elapses, giving the extension time to connect to the bridge.
func NewModel(opts Options) *Model {
	m := &Model{
		client:       opts.Client,
		store:        opts.Store,
		watcher:      opts.Watcher,
		storeChanges: opts.StoreChanges,
		dispatcher:   dispatcher.New(),
		snapshots:    state.NewSnapshotStore(),
		styles:       theme.Default(),
		width:        opts.Width,
		height:       opts.Height,
		fixedWidth:   opts.Width > 0,
		fixedHeight:  opts.Height > 0,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		startupDelay: opts.StartupDelay,
		rows:         uistate.NewTree(),
		loading:      true,
	}
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(startupMsg{}):        m.handleStartup,
		reflect.TypeOf(renderRequestMsg{}):  m.handleRenderRequest,
		reflect.TypeOf(treeBuiltMsg{}):      m.handleTreeBuilt,
		reflect.TypeOf(activationMsg{}):     m.handleActivation,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResult,
		reflect.TypeOf(renameSavedMsg{}):    m.handleRenameSaved,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEvent,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDone,
		reflect.TypeOf(storeChangedMsg{}):   m.handleStoreChanged,
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKey,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouse,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleResize,
	}
}

// Init schedules the delayed first render and arms the event pumps.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.waitForBackendEvent(),
		m.waitForStoreChange(),
	}
	if m.startupDelay > 0 {
		cmds = append(cmds, tea.Tick(m.startupDelay, func(time.Time) tea.Msg {
			return startupMsg{}
		}))
	} else {
		cmds = append(cmds, func() tea.Msg { return startupMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update dispatches on message type.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handleStartup(tea.Msg) tea.Cmd {
	if m.started {
		return nil
	}
	m.started = true
	return m.scheduleRender(false)
}

func (m *Model) handleRenderRequest(msg tea.Msg) tea.Cmd {
	req := msg.(renderRequestMsg)
	return m.scheduleRender(req.restoreScroll)
}

func (m *Model) handleTreeBuilt(msg tea.Msg) tea.Cmd {
	built := msg.(treeBuiltMsg)
	if built.generation != m.generation {
		events.Render.Discarded(built.generation, m.generation)
		return nil
	}
	m.loading = false
	if built.err != nil {
		events.Render.Error(built.err)
		m.errText = built.err.Error()
		return nil
	}
	m.errText = ""
	m.nodes = built.nodes
	m.snapshots.SetSnapshot(built.snapshot)
	m.reflatten()
	if built.restoreScroll {
		m.rows.ViewportOffset = built.scroll
		m.rows.ClampViewport(m.maxVisible())
	} else {
		m.rows.ViewportOffset = 0
	}
	events.Render.Applied(built.generation, len(m.rows.Rows))
	return m.refreshActivation()
}

func (m *Model) handleActivation(msg tea.Msg) tea.Cmd {
	act := msg.(activationMsg)
	m.rows.ClearActiveMarks()
	if act.err != nil {
		events.Render.Error(act.err)
		m.snapshots.ClearFocus()
		return nil
	}
	if !act.has {
		m.snapshots.ClearFocus()
		return nil
	}
	m.snapshots.SetFocus(act.windowID, act.tabID)
	m.rows.MarkActive(act.windowID, act.tabID)
	events.Render.Activation(act.windowID, act.tabID)
	return nil
}

func (m *Model) handleActionResult(msg tea.Msg) tea.Cmd {
	res := msg.(actionResultMsg)
	if res.err != nil {
		m.errText = res.err.Error()
		return nil
	}
	m.errText = ""
	if m.verbose {
		m.infoText = res.info
	}
	// Successful commands move host focus; the notification may race the
	// command's ack, so refresh the marks directly as well.
	return m.refreshActivation()
}

func (m *Model) handleBackendEvent(msg tea.Msg) tea.Cmd {
	evt := msg.(backendEventMsg).event
	cmds := []tea.Cmd{m.waitForBackendEvent()}

	if !m.started {
		return tea.Batch(cmds...)
	}

	switch evt.Kind {
	case backend.KindResync:
		cmds = append(cmds, m.scheduleRender(true))
	case backend.KindHostEvent:
		result := m.dispatcher.Handle(evt.Host)
		if result.Rebuild {
			cmds = append(cmds, m.scheduleRender(true))
		} else if result.RefreshActivation {
			cmds = append(cmds, m.refreshActivation())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleBackendDone(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) handleStoreChanged(tea.Msg) tea.Cmd {
	// scheduleRender reloads the store before fetching, so an external edit
	// of the state file folds into an ordinary rebuild.
	return tea.Batch(m.waitForStoreChange(), m.scheduleRender(true))
}

func (m *Model) handleResize(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.reflatten()
	m.rows.ClampViewport(m.maxVisible())
	return nil
}

// reflatten rebuilds the row list from the cached nodes. Collapse flags are
// read live from the store so a toggle needs no host round-trip; activation
// marks are reapplied from the snapshot store.
func (m *Model) reflatten() {
	m.rows.SetRows(flattenNodes(m.nodes, m.store.Collapsed, m.width))
	if windowID, tabID := m.snapshots.Focus(); windowID != 0 {
		m.rows.MarkActive(windowID, tabID)
	}
	m.rows.EnsureVisible(m.maxVisible())
}

func (m *Model) maxVisible() int {
	visible := m.height - bottomBarRows
	if visible < 1 {
		visible = 1
	}
	return visible
}
