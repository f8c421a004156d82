package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	successColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	infoColor      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue
	dirtyColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	cursorColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	selectedColor  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	frequencyColor = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimmedColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

func formatStatus(message string, kind statusKind) string {
	switch kind {
	case statusSuccess:
		return successColor.Render(message)
	case statusError:
		return errorColor.Render(message)
	case statusInfo:
		return infoColor.Render(message)
	default:
		return message
	}
}

func cursorMarker(focused bool) string {
	if focused {
		return cursorColor.Render(">")
	}
	return " "
}

func formatDirty(text string) string {
	return dirtyColor.Render(text)
}

func formatSelected(text string) string {
	return selectedColor.Render(text)
}

func formatFrequency(text string) string {
	return frequencyColor.Render(text)
}

// formatCommand dims hints for commands that currently do nothing.
func formatCommand(text string, enabled bool) string {
	if enabled {
		return activeColor.Render(text)
	}
	return dimmedColor.Render(text)
}
