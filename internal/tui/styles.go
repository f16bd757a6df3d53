package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	dirtyStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	cursorStyle     = lipgloss.NewStyle().Bold(true)
	chipStyle       = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, true)
	activeChipStyle = chipStyle.Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
