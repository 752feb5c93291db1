package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	WindowHeader       *lipgloss.Style
	ActiveWindowHeader *lipgloss.Style
	GroupHeader        *lipgloss.Style
	Tab                *lipgloss.Style
	ActiveTab          *lipgloss.Style
	Pinned             *lipgloss.Style
	Icon               *lipgloss.Style
	Site               *lipgloss.Style
	Arrow              *lipgloss.Style

	SelectedRow       *lipgloss.Style
	RowIndicator      *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	ActiveIndicator   *lipgloss.Style

	Error     *lipgloss.Style
	Info      *lipgloss.Style
	Footer    *lipgloss.Style
	FormTitle *lipgloss.Style
	FormHelp  *lipgloss.Style
}

var defaultStyles = Styles{
	WindowHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	),
	ActiveWindowHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	GroupHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Pinned: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Icon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Site: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Arrow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	RowIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	ActiveIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FormTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	FormHelp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
