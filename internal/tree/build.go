// Package tree turns a host snapshot plus persisted user state into the
// ordered node structure the sidebar renders. Everything here is pure: same
// snapshot and state in, same nodes out, no host calls, no side effects.
package tree

import (
	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/store"
)

// StateView is the slice of the user-state store the builder needs.
type StateView interface {
	DisplayTitle(windowID int) string
	Collapsed(key string) bool
}

// Block is one render unit inside a window's content region: either a single
// ungrouped tab, or a group header with its member tabs.
type Block struct {
	Group *host.TabGroup
	Tabs  []host.Tab
}

// Single reports whether the block is a lone ungrouped tab.
func (b Block) Single() bool {
	return b.Group == nil
}

// WindowNode is one window's subtree.
type WindowNode struct {
	Window     host.Window
	Title      string
	SectionKey string
	Collapsed  bool
	Blocks     []Block
}

// GroupKey returns the section key for a group block's content region.
func GroupKey(group host.TabGroup) string {
	return store.GroupSectionKey(group.ID)
}

// BuildBlocks scans a window's tabs once, in host order, and produces the
// ordered block list. A group opens a block the first time one of its tabs
// is encountered; later members are absorbed into that block. A tab whose
// group id is unknown, or whose group belongs to another window, renders as
// an ungrouped block.
func BuildBlocks(window host.Window, groups []host.TabGroup) []Block {
	byID := make(map[int]host.TabGroup, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	var blocks []Block
	open := make(map[int]int) // group id -> index into blocks
	for _, tab := range window.Tabs {
		group, ok := byID[tab.GroupID]
		if !tab.Grouped() || !ok || group.WindowID != window.ID {
			blocks = append(blocks, Block{Tabs: []host.Tab{tab}})
			continue
		}
		if idx, opened := open[group.ID]; opened {
			blocks[idx].Tabs = append(blocks[idx].Tabs, tab)
			continue
		}
		g := group
		open[group.ID] = len(blocks)
		blocks = append(blocks, Block{Group: &g, Tabs: []host.Tab{tab}})
	}
	return blocks
}

// Build produces the full display tree: windows in display order, each with
// its interleaved blocks and its collapse state initialized from the store.
func Build(snapshot host.Snapshot, state StateView) []WindowNode {
	ordered := SortWindows(snapshot.Windows, state.DisplayTitle)
	nodes := make([]WindowNode, len(ordered))
	for i, window := range ordered {
		key := store.WindowSectionKey(window.ID)
		nodes[i] = WindowNode{
			Window:     window,
			Title:      state.DisplayTitle(window.ID),
			SectionKey: key,
			Collapsed:  state.Collapsed(key),
			Blocks:     BuildBlocks(window, snapshot.Groups),
		}
	}
	return nodes
}
