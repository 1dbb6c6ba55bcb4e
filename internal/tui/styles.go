package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	scoreStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Align(lipgloss.Center)

	choiceStyle = lipgloss.NewStyle().
			Width(16).
			Align(lipgloss.Center).
			Bold(true)

	vsStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")).
		Bold(true).
		Padding(0, 2)

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
)
