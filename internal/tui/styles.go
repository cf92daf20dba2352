package tui

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statsStyle     = lipgloss.NewStyle().Bold(true)
	buttonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#007BFF")).Padding(0, 1)
	inputStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#CCCCCC")).Padding(0, 1)
	taskStyle      = lipgloss.NewStyle()
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#AAAAAA"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)
