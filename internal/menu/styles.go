package menu

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
}

// newStyles binds styles to the output's renderer so plain writers, such as
// a file or a test buffer, get no escape codes.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}
