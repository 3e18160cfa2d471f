package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the browser.
type Theme struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldError  lipgloss.Style
	Box         lipgloss.Style
	Primary     lipgloss.Color
}

// DefaultTheme is the stock color scheme.
func DefaultTheme() Theme {
	primary := lipgloss.Color("#7c3aed")
	muted := lipgloss.Color("240")
	return Theme{
		Primary:     primary,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(primary).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(muted),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Normal:      lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
		FieldLabel:  lipgloss.NewStyle().Bold(true),
		FieldError:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
