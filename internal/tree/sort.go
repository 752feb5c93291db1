package tree

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/atomicstack/tab-sidebar/internal/host"
)

// SortWindows orders windows for display: focused windows first, the rest by
// numeric-aware, case-insensitive collation of their effective titles. The
// order is a pure function of the snapshot plus the title map; ties keep
// host order.
func SortWindows(windows []host.Window, displayTitle func(windowID int) string) []host.Window {
	ordered := make([]host.Window, len(windows))
	copy(ordered, windows)

	// collate.Loose folds case, width and diacritics; collate.Numeric makes
	// "Window 2" sort before "Window 10".
	c := collate.New(language.Und, collate.Numeric, collate.Loose)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Focused != b.Focused {
			return a.Focused
		}
		return c.CompareString(displayTitle(a.ID), displayTitle(b.ID)) < 0
	})
	return ordered
}
