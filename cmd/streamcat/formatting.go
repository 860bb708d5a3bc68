package main

import "github.com/charmbracelet/lipgloss"

var (
	keywordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	paragraphStyle = lipgloss.NewStyle().Width(78)
)

// keyword highlights a short phrase in command help text.
func keyword(s string) string {
	return keywordStyle.Render(s)
}

// paragraph word-wraps long-form help text to a comfortable terminal width.
func paragraph(s string) string {
	return paragraphStyle.Render(s)
}
