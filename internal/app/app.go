// Package app assembles the bridge, the state store, and the UI into a
// running program.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tab-sidebar/internal/backend"
	"github.com/atomicstack/tab-sidebar/internal/host/bridge"
	"github.com/atomicstack/tab-sidebar/internal/logging"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
	"github.com/atomicstack/tab-sidebar/internal/store"
	"github.com/atomicstack/tab-sidebar/internal/ui"
)

// Config is the application-level configuration.
type Config struct {
	ListenAddr   string
	StateFile    string
	StartupDelay time.Duration
	Resync       time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
}

// Run starts the bridge listener, the backend watcher, and the state-file
// watch, then blocks inside the Bubble Tea program until it exits.
func Run(cfg Config) error {
	st := store.New(store.NewFile(cfg.StateFile))

	br := bridge.New(cfg.ListenAddr)
	if err := br.Start(); err != nil {
		return fmt.Errorf("start bridge: %w", err)
	}
	defer func() {
		if err := br.Close(); err != nil {
			logging.Error(err)
		}
	}()

	watcher := backend.NewWatcher(br.Events(), cfg.Resync)
	defer watcher.Stop()

	stop := make(chan struct{})
	defer close(stop)

	// The state-file watch only feeds external-edit refreshes; the program
	// still works without it.
	changes, err := st.Watch(stop)
	if err != nil {
		logging.Error(err)
		changes = nil
	}

	model := ui.NewModel(ui.Options{
		Client:       br,
		Store:        st,
		Watcher:      watcher,
		StoreChanges: changes,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		StartupDelay: cfg.StartupDelay,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	events.App.Stop()
	return err
}
