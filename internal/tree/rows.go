package tree

import (
	"net/url"
	"strings"

	"github.com/atomicstack/tab-sidebar/internal/host"
)

// Glyphs standing in for favicon imagery. A tab with a usable http(s) icon
// URL gets the solid glyph; everything else falls back to the bundled
// default.
const (
	IconGlyph        = "◉"
	DefaultIconGlyph = "○"
	PinnedMarker     = "*"
)

const pinnedSuffix = " (pinned)"

// TabTitle returns the visual title text: title, else URL, else empty.
func TabTitle(tab host.Tab) string {
	if tab.Title != "" {
		return tab.Title
	}
	return tab.URL
}

// TabIcon picks the favicon glyph for a tab. Non-http(s) icon URLs (bundled
// pages, data URIs, nothing at all) use the default glyph.
func TabIcon(tab host.Tab) string {
	if usableIconURL(tab.FavIconURL) {
		return IconGlyph
	}
	return DefaultIconGlyph
}

// AccessibleTitle is the tab title exposed to assistive consumers: the
// visual title plus a pinned suffix that never appears in the visual text.
func AccessibleTitle(tab host.Tab) string {
	title := TabTitle(tab)
	if tab.Pinned {
		return title + pinnedSuffix
	}
	return title
}

// SiteLabel extracts the host part of a tab's URL for the wide layout's
// second column. Unparsable or empty URLs yield "".
func SiteLabel(tab host.Tab) string {
	if tab.URL == "" {
		return ""
	}
	u, err := url.Parse(tab.URL)
	if err != nil {
		return ""
	}
	return u.Host
}

func usableIconURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
