package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	feedStyle    = lipgloss.NewStyle().MarginTop(1)
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)
