package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Dim       lipgloss.Style
	Match     lipgloss.Style
	Cursor    lipgloss.Style
	Loading   lipgloss.Style
	NoResults lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Loading:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
