package main

import (
	"github.com/charmbracelet/lipgloss"

	"pcblab/internal/models"
)

var (
	primary = lipgloss.Color("#0066CC")
	subtle  = lipgloss.Color("241")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// badge renders a status label in the color of its display palette
func badge(d models.Display, ok bool) string {
	if !ok {
		return dimStyle.Render("unknown")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Bold(true).Render(d.Label)
}

// field renders a "label value" line
func field(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
