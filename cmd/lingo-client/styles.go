package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const (
	okMark   = "✅"
	failMark = "❌"
)
