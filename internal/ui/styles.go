package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by View.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Open     lipgloss.Style
	Done     lipgloss.Style
	Button   lipgloss.Style
	Muted    lipgloss.Style
	Focused  lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the built-in styles. Completed items are struck
// through and dimmed.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Open:     lipgloss.NewStyle(),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
