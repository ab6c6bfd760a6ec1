package prompt

import "github.com/charmbracelet/lipgloss"

var labelStyle = lipgloss.NewStyle().Bold(true)
