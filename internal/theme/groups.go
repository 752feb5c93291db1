package theme

import "github.com/charmbracelet/lipgloss"

// SwatchGlyph is the colored square shown before a group title.
const SwatchGlyph = "■"

// groupColors maps the host's group color names onto the 256-color palette.
var groupColors = map[string]lipgloss.Color{
	"grey":   lipgloss.Color("245"),
	"blue":   lipgloss.Color("33"),
	"red":    lipgloss.Color("196"),
	"yellow": lipgloss.Color("220"),
	"green":  lipgloss.Color("40"),
	"pink":   lipgloss.Color("205"),
	"purple": lipgloss.Color("129"),
	"cyan":   lipgloss.Color("44"),
	"orange": lipgloss.Color("208"),
}

var defaultGroupColor = lipgloss.Color("245")

// GroupColor resolves a host color name; unknown names fall back to grey.
func GroupColor(name string) lipgloss.Color {
	if c, ok := groupColors[name]; ok {
		return c
	}
	return defaultGroupColor
}

// Swatch renders the colored square for a group.
func Swatch(name string) string {
	return lipgloss.NewStyle().Foreground(GroupColor(name)).Render(SwatchGlyph)
}
