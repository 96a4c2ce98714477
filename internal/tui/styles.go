package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#8BC34A")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#E53935")
	colorChip   = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles used by every screen.
type Styles struct {
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Error      lipgloss.Style
	Cursor     lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Chip       lipgloss.Style
	ActiveChip lipgloss.Style
	Quote      lipgloss.Style
	Detail     lipgloss.Style
	Help       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Subtle:     lipgloss.NewStyle().Foreground(colorMuted),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Cursor:     lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Tab:        lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		ActiveTab:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(colorAccent),
		Chip:       lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted),
		ActiveChip: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorChip).Foreground(colorChip).Bold(true),
		Quote:      lipgloss.NewStyle().PaddingLeft(1),
		Detail:     lipgloss.NewStyle().PaddingLeft(4).Foreground(colorMuted),
		Help:       lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
